package config

import "golang.org/x/net/html"

type fakeHost struct{}

func (fakeHost) Query(string) (*html.Node, error) { return nil, nil }

func (fakeHost) AppendStyle(string) *html.Node { return nil }
