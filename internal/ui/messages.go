package ui

import (
	"github.com/unkn0wn-root/restforge/internal/httpclient"
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
	statusSuccess
)

type responseMsg struct {
	response *httpclient.Response
	err      error
}

type statusMsg struct {
	text  string
	level statusLevel
}

type exportResultMsg struct {
	path string
	err  error
}

type settingsSavedMsg struct {
	path string
	err  error
}
