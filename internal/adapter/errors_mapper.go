package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 200

// providerError classifies a non-2xx provider response. BrasilAPI answers an
// unknown CEP with 404 and a malformed one with 400; both providers answer
// overload with 429 or a 5xx. Any error returned here sends the chain on to
// the next provider.
func providerError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if body == "" {
		body = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrCEPNotFound, body)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrCEPRejected, body)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrProviderThrottled, body)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrProviderDown, status, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, body)
	}
}
