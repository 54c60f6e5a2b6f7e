package github

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/go-github/v68/github"

	perrors "prt/internal/errors"
)

// classify converts a go-github error into a structured error whose kind
// tells the session which outcome occurred.
func classify(op perrors.Op, err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return perrors.E(op, perrors.KindAPI, rateErr.Message)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return perrors.E(op, perrors.KindAPI, abuseErr.Message)
	}

	var respErr *github.ErrorResponse
	if !errors.As(err, &respErr) {
		return perrors.E(op, perrors.KindAPI, err)
	}
	status := 0
	if respErr.Response != nil {
		status = respErr.Response.StatusCode
	}
	msg := responseMessage(respErr)
	switch status {
	case http.StatusUnprocessableEntity:
		return perrors.E(op, perrors.KindValidation, msg)
	case http.StatusNotFound:
		return perrors.E(op, perrors.KindNotFound, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return perrors.E(op, perrors.KindAuth, msg)
	default:
		return perrors.E(op, perrors.KindAPI, msg)
	}
}

// responseMessage joins the top-level message with every detail GitHub sent.
func responseMessage(e *github.ErrorResponse) string {
	msg := strings.TrimSpace(e.Message)
	details := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		if d.Message != "" {
			details = append(details, d.Message)
			continue
		}
		details = append(details, d.Error())
	}
	if len(details) > 0 {
		if msg == "" {
			return strings.Join(details, "; ")
		}
		return msg + ": " + strings.Join(details, "; ")
	}
	if msg == "" && e.Response != nil {
		return http.StatusText(e.Response.StatusCode)
	}
	return msg
}
