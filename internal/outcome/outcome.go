package outcome

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/unkn0wn-root/restforge/internal/errdef"
	"github.com/unkn0wn-root/restforge/internal/httpclient"
)

// Phase tags the mutually exclusive display states of the latest dispatch.
// Exactly one phase is active at any observable instant.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSuccess
	PhaseFailure
)

type Result struct {
	Phase      Phase
	Status     int
	StatusText string
	Data       any
	Pretty     string
	Message    string
	Duration   time.Duration
}

func Idle() Result {
	return Result{Phase: PhaseIdle}
}

func Pending() Result {
	return Result{Phase: PhasePending}
}

func failure(format string, args ...interface{}) Result {
	return Result{Phase: PhaseFailure, Message: fmt.Sprintf(format, args...)}
}

// FromResponse normalises a finished dispatch into a Result. A received
// HTTP response of any status code is a success; only transport errors and
// unparseable bodies become failures. On a parse failure the status line is
// folded into the message so diagnostics survive the JSON requirement.
func FromResponse(resp *httpclient.Response, err error) Result {
	if err != nil {
		return failure("%s", errdef.Message(err))
	}
	if resp == nil {
		return failure("no response received")
	}

	var data any
	if jsonErr := json.Unmarshal(resp.Body, &data); jsonErr != nil {
		return Result{
			Phase:    PhaseFailure,
			Message:  fmt.Sprintf("parse response as JSON: %v (HTTP %s)", jsonErr, resp.Status),
			Duration: resp.Duration,
		}
	}

	statusText := statusTextOf(resp)
	pretty, prettyErr := renderDisplayDocument(resp.StatusCode, statusText, data)
	if prettyErr != nil {
		return failure("render response: %v", prettyErr)
	}

	return Result{
		Phase:      PhaseSuccess,
		Status:     resp.StatusCode,
		StatusText: statusText,
		Data:       data,
		Pretty:     pretty,
		Duration:   resp.Duration,
	}
}

// statusTextOf strips the numeric code from the status line ("404 Not
// Found" -> "Not Found").
func statusTextOf(resp *httpclient.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	return text
}

func renderDisplayDocument(status int, statusText string, data any) (string, error) {
	doc := struct {
		Status     int    `json:"status"`
		StatusText string `json:"statusText"`
		Data       any    `json:"data"`
	}{Status: status, StatusText: statusText, Data: data}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
