package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/unkn0wn-root/restforge/internal/builder"
	"github.com/unkn0wn-root/restforge/internal/errdef"
)

type Options struct {
	Timeout            time.Duration
	FollowRedirects    bool
	InsecureSkipVerify bool
	ProxyURL           string
}

type Client struct {
	jar         http.CookieJar
	httpFactory func(Options) (*http.Client, error)
}

func NewClient() *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{jar: jar}
	c.httpFactory = c.buildHTTPClient
	return c
}

// SetHTTPFactory allows callers to override how http.Client instances are created.
// Passing nil restores the default factory.
func (c *Client) SetHTTPFactory(factory func(Options) (*http.Client, error)) {
	if factory == nil {
		factory = c.buildHTTPClient
	}
	c.httpFactory = factory
}

type Response struct {
	Status       string
	StatusCode   int
	Proto        string
	Headers      http.Header
	Body         []byte
	Duration     time.Duration
	EffectiveURL string
}

// Execute dispatches an assembled descriptor and reads the full response
// body. Any received HTTP response is a success at this layer; 4xx/5xx
// classification belongs to the outcome mapping, not the transport.
func (c *Client) Execute(
	ctx context.Context,
	req builder.Outbound,
	opts Options,
) (resp *Response, err error) {
	httpReq, err := c.prepareHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	client, err := c.httpFactory(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeHTTP, err, "perform request")
	}

	defer func() {
		if closeErr := httpResp.Body.Close(); closeErr != nil && err == nil {
			err = errdef.Wrap(errdef.CodeHTTP, closeErr, "close response body")
			resp = nil
		}
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeHTTP, err, "read response body")
	}

	resp = &Response{
		Status:       httpResp.Status,
		StatusCode:   httpResp.StatusCode,
		Proto:        httpResp.Proto,
		Headers:      httpResp.Header.Clone(),
		Body:         body,
		Duration:     time.Since(start),
		EffectiveURL: effectiveURL(httpReq, httpResp),
	}
	return resp, nil
}

func (c *Client) prepareHTTPRequest(
	ctx context.Context,
	req builder.Outbound,
) (*http.Request, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, errdef.New(errdef.CodeHTTP, "request url is empty")
	}

	var bodyReader io.Reader
	if req.HasBody {
		bodyReader = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, bodyReader)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeHTTP, err, "build request")
	}

	for name, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Set(name, value)
		}
	}

	return httpReq, nil
}

// Redirects and transports can rewrite the request, so prefer the final
// URL attached to the response.
func effectiveURL(sent *http.Request, resp *http.Response) string {
	if resp != nil && resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	if sent != nil && sent.URL != nil {
		return sent.URL.String()
	}
	return ""
}
