package hotelapi

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hotel_manager/internal/adapters/observability"
	"hotel_manager/internal/domain"
)

// Client talks to the hotel catalog service, including its image-upload
// endpoints. Requests carry the session's bearer token; the client
// itself holds no credentials.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Catalog ----

type listEnvelope struct {
	Data []domain.HotelSummary `json:"data"`
}

type hotelEnvelope struct {
	Data domain.HotelSummary `json:"data"`
}

func (c *Client) List(ctx context.Context, token string) ([]domain.HotelSummary, error) {
	var env listEnvelope
	err := c.getJSON(ctx, c.base+"/api/v1/hotels", token, "list", &env)
	return env.Data, err
}

func (c *Client) Get(ctx context.Context, token, id string) (domain.HotelSummary, error) {
	var env hotelEnvelope
	err := c.getJSON(ctx, c.base+"/api/v1/hotels/"+id, token, "get", &env)
	return env.Data, err
}

func (c *Client) Create(ctx context.Context, token string, h domain.HotelSummary) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	err := c.sendJSON(ctx, http.MethodPost, c.base+"/api/v1/hotels", token, "create", h, &out)
	return out.ID, err
}

func (c *Client) Update(ctx context.Context, token, id string, h domain.HotelSummary) error {
	return c.sendJSON(ctx, http.MethodPut, c.base+"/api/v1/hotels/"+id, token, "update", h, nil)
}

func (c *Client) Delete(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, c.base+"/api/v1/hotels/"+id, token, "delete", nil, nil)
}

// ---- Uploads ----

// UploadSingle posts one file as multipart field "image" and returns the
// stored URL.
func (c *Client) UploadSingle(ctx context.Context, token string, f domain.UploadFile) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.postMultipart(ctx, c.base+"/api/v1/hotels/upload-single", token, "upload-single", "image", []domain.UploadFile{f}, &out)
	if err != nil {
		return "", err
	}
	return out.URL, nil
}

// UploadMany posts the batch as repeated multipart field "images". The
// response lists one URL per file in submission order.
func (c *Client) UploadMany(ctx context.Context, token string, fs []domain.UploadFile) ([]string, error) {
	var out struct {
		Files []struct {
			URL string `json:"url"`
		} `json:"files"`
	}
	err := c.postMultipart(ctx, c.base+"/api/v1/hotels/upload-images", token, "upload-images", "images", fs, &out)
	if err != nil {
		return nil, err
	}
	urls := make([]string, len(out.Files))
	for i, f := range out.Files {
		urls[i] = f.URL
	}
	return urls, nil
}

// ---- Internals ----

// getJSON performs a GET with client-side rate limiting, retries on 429
// and transient 5xx honoring Retry-After, and decodes JSON into out.
func (c *Client) getJSON(ctx context.Context, url, token, endpoint string, out any) error {
	return c.retry(ctx, endpoint, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, url, token, "", nil)
	}, out)
}

// sendJSON marshals in once and rebuilds the body each attempt, so
// writes get the same retry discipline as reads.
func (c *Client) sendJSON(ctx context.Context, method, url, token, endpoint string, in, out any) error {
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = b
	}
	return c.retry(ctx, endpoint, func() (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		return c.newRequest(ctx, method, url, token, "application/json", body)
	}, out)
}

// postMultipart streams the files once; upload bodies are not replayable
// so there is no retry here.
func (c *Client) postMultipart(ctx context.Context, url, token, endpoint, field string, fs []domain.UploadFile, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range fs {
		part, err := mw.CreateFormFile(field, f.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Body); err != nil {
			return fmt.Errorf("read %s: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, url, token, mw.FormDataContentType(), &buf)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveUpload(endpoint, "error")
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("hotel", endpoint, resp.StatusCode, time.Since(start))

	if err := statusErr(resp.StatusCode); err != nil {
		observability.ObserveUpload(endpoint, "rejected")
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return err
	}
	observability.ObserveUpload(endpoint, "ok")
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) newRequest(ctx context.Context, method, url, token, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotel-manager/1.0")
	return req, nil
}

// statusErr maps a non-retryable status to its sentinel. nil for 2xx.
func statusErr(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case code == http.StatusForbidden:
		return domain.ErrForbidden
	default:
		return &domain.ServerError{Status: code}
	}
}

func retryable(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func (c *Client) retry(ctx context.Context, endpoint string, mkReq func() (*http.Request, error), out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := mkReq()
		if err != nil {
			return err
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		observability.ObserveExternal("hotel", endpoint, resp.StatusCode, time.Since(start))

		if retryable(resp.StatusCode) {
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = &domain.ServerError{Status: resp.StatusCode}
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		if err := statusErr(resp.StatusCode); err != nil {
			io.Copy(io.Discard, resp.Body) //nolint:errcheck
			resp.Body.Close()
			return err
		}

		if out == nil || resp.StatusCode == http.StatusNoContent {
			io.Copy(io.Discard, resp.Body) //nolint:errcheck
			resp.Body.Close()
			return nil
		}
		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		return err
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up
// to +50% jitter from crypto/rand so it stays safe under concurrency.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
