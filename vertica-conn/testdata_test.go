package main

import (
	"errors"
	"net/http"

	"github.com/Real-Dev-Squad/vertica-conn/layer/utils"
	"github.com/Real-Dev-Squad/vertica-conn/layer/utils/mocks"
)

type mockConnector = mocks.Connector

func newConnector(row utils.Row) *mockConnector {
	return &mocks.Connector{Row: row}
}

func validEnv() map[string]string {
	return map[string]string{
		"HOST":     "vertica.example.com",
		"PORT":     "5433",
		"USER":     "dbadmin",
		"PASSWORD": "s3cret",
		"DATABASE": "analytics",
	}
}

func envWithout(key string) map[string]string {
	env := validEnv()
	delete(env, key)
	return env
}

func envWith(key string, value string) map[string]string {
	env := validEnv()
	env[key] = value
	return env
}

var MissingConfigTests = []struct {
	Name        string
	Env         map[string]string
	Field       string
	Description string
}{
	{Name: "MissingHost", Env: envWithout("HOST"), Field: "HOST", Description: "HOST not set"},
	{Name: "MissingPort", Env: envWithout("PORT"), Field: "PORT", Description: "PORT not set"},
	{Name: "MissingUser", Env: envWithout("USER"), Field: "USER", Description: "USER not set"},
	{Name: "MissingPassword", Env: envWithout("PASSWORD"), Field: "PASSWORD", Description: "PASSWORD not set"},
	{Name: "MissingDatabase", Env: envWithout("DATABASE"), Field: "DATABASE", Description: "DATABASE not set"},
	{Name: "EmptyHost", Env: envWith("HOST", ""), Field: "HOST", Description: "HOST set to an empty string"},
	{Name: "NonNumericPort", Env: envWith("PORT", "vertica"), Field: "PORT", Description: "PORT is not a number"},
	{Name: "PortOutOfRange", Env: envWith("PORT", "70000"), Field: "PORT", Description: "PORT above 65535"},
	{Name: "NothingSet", Env: map[string]string{}, Field: "HOST", Description: "first missing variable is reported"},
}

var RoundTripTests = []struct {
	Name            string
	Connector       func() *mockConnector
	ExpectedStatus  int
	ExpectedMessage string
	Description     string
}{
	{
		Name:            "Success",
		Connector:       func() *mockConnector { return newConnector(utils.Row{int64(1)}) },
		ExpectedStatus:  http.StatusOK,
		ExpectedMessage: "Connected to Vertica successfully. Query result: (1,)",
		Description:     "SELECT 1 returns a single row",
	},
	{
		Name: "ConnectionRefused",
		Connector: func() *mockConnector {
			c := newConnector(nil)
			c.ConnectErr = errors.New("dial tcp 10.0.0.1:5433: connect: connection refused")
			return c
		},
		ExpectedStatus:  http.StatusInternalServerError,
		ExpectedMessage: "Error connecting to Vertica: dial tcp 10.0.0.1:5433: connect: connection refused",
		Description:     "connect fails",
	},
	{
		Name: "AuthenticationFailed",
		Connector: func() *mockConnector {
			c := newConnector(nil)
			c.ConnectErr = errors.New("Invalid username or password")
			return c
		},
		ExpectedStatus:  http.StatusInternalServerError,
		ExpectedMessage: "Error connecting to Vertica: Invalid username or password",
		Description:     "authentication fails during connect",
	},
	{
		Name: "QueryFailed",
		Connector: func() *mockConnector {
			c := newConnector(nil)
			c.ExecuteErr = errors.New("Syntax error at or near \"SELECT\"")
			return c
		},
		ExpectedStatus:  http.StatusInternalServerError,
		ExpectedMessage: "Error connecting to Vertica: Syntax error at or near \"SELECT\"",
		Description:     "execute fails",
	},
	{
		Name: "FetchFailed",
		Connector: func() *mockConnector {
			c := newConnector(nil)
			c.FetchErr = errors.New("connection reset by peer")
			return c
		},
		ExpectedStatus:  http.StatusInternalServerError,
		ExpectedMessage: "Error connecting to Vertica: connection reset by peer",
		Description:     "fetch fails",
	},
}

var SSLFlagTests = []struct {
	Name        string
	Value       *string
	ExpectTLS   bool
	Description string
}{
	{Name: "Unset", Value: nil, ExpectTLS: false, Description: "USE_SSL absent"},
	{Name: "Lowercase", Value: strPtr("true"), ExpectTLS: true, Description: "true"},
	{Name: "Uppercase", Value: strPtr("TRUE"), ExpectTLS: true, Description: "TRUE"},
	{Name: "Titlecase", Value: strPtr("True"), ExpectTLS: true, Description: "True"},
	{Name: "False", Value: strPtr("False"), ExpectTLS: false, Description: "False"},
	{Name: "One", Value: strPtr("1"), ExpectTLS: false, Description: "1 is not true"},
	{Name: "Yes", Value: strPtr("yes"), ExpectTLS: false, Description: "yes is not true"},
	{Name: "Empty", Value: strPtr(""), ExpectTLS: false, Description: "empty string"},
}

func strPtr(s string) *string {
	return &s
}

var TriggerEventTests = []struct {
	Name        string
	Event       string
	Description string
}{
	{Name: "EmptyObject", Event: `{}`, Description: "empty event"},
	{Name: "String", Event: `"ping"`, Description: "bare JSON string"},
	{Name: "Array", Event: `[1]`, Description: "JSON array"},
	{Name: "ObjectBody", Event: `{"body": {"a": 1}}`, Description: "body is not a string"},
	{Name: "ScheduledEvent", Event: `{"source": "aws.events", "detail-type": "Scheduled Event", "detail": {}}`, Description: "EventBridge schedule"},
	{Name: "Null", Event: `null`, Description: "JSON null"},
}
