package mocks

import (
	"context"

	"github.com/Real-Dev-Squad/vertica-conn/layer/utils"
)

// Connector records every call made against it. PanicOnClose makes both
// close operations panic instead of returning their errors.
type Connector struct {
	ConnectErr     error
	CursorErr      error
	ExecuteErr     error
	FetchErr       error
	CursorCloseErr error
	ConnCloseErr   error
	PanicOnClose   bool
	Row            utils.Row

	Connects         int
	Params           utils.ConnectionParameters
	Queries          []string
	CursorClosed     bool
	ConnectionClosed bool
}

func (c *Connector) Connect(ctx context.Context, params utils.ConnectionParameters) (utils.Connection, error) {
	c.Connects++
	c.Params = params
	if c.ConnectErr != nil {
		return nil, c.ConnectErr
	}
	return &connection{c: c}, nil
}

type connection struct {
	c *Connector
}

func (m *connection) Cursor() (utils.Cursor, error) {
	if m.c.CursorErr != nil {
		return nil, m.c.CursorErr
	}
	return &cursor{c: m.c}, nil
}

func (m *connection) Close() error {
	m.c.ConnectionClosed = true
	if m.c.PanicOnClose {
		panic("connection close")
	}
	return m.c.ConnCloseErr
}

type cursor struct {
	c *Connector
}

func (m *cursor) Execute(ctx context.Context, query string) error {
	m.c.Queries = append(m.c.Queries, query)
	return m.c.ExecuteErr
}

func (m *cursor) FetchOne() (utils.Row, error) {
	if m.c.FetchErr != nil {
		return nil, m.c.FetchErr
	}
	return m.c.Row, nil
}

func (m *cursor) Close() error {
	m.c.CursorClosed = true
	if m.c.PanicOnClose {
		panic("cursor close")
	}
	return m.c.CursorCloseErr
}
