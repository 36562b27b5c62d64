package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_HTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     Kind
		expected int
	}{
		{MissingParameter, http.StatusBadRequest},
		{MissingCredential, http.StatusInternalServerError},
		{UpstreamFetch, http.StatusInternalServerError},
		{ProxyTransport, http.StatusBadGateway},
		{Unknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, New(tt.kind, "x").HTTPStatus())
		})
	}
}

func TestError_MessageAndDetail(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := Wrap(ProxyTransport, "gold api proxy failed", cause)

	assert.Equal(t, "gold api proxy failed: connection refused", err.Error())
	assert.Equal(t, "connection refused", err.DetailText())
	assert.ErrorIs(t, err, cause)

	err.Detail = "explicit"
	assert.Equal(t, "explicit", err.DetailText())

	assert.Empty(t, New(MissingParameter, "missing").DetailText())
}

func TestIs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", New(MissingCredential, "no key"))

	assert.True(t, Is(wrapped, MissingCredential))
	assert.False(t, Is(wrapped, ProxyTransport))
	assert.False(t, Is(errors.New("plain"), MissingCredential))
}

func TestResponseError(t *testing.T) {
	t.Parallel()

	re := &ResponseError{Provider: "evds", StatusCode: http.StatusServiceUnavailable, Body: []byte("<html>maintenance</html>")}
	err := Wrap(UpstreamFetch, "failed to fetch series data", re)

	// 本文はエラーメッセージに含めない
	assert.Equal(t, "evds http 503", re.Error())
	assert.NotContains(t, err.Error(), "maintenance")
	assert.Equal(t, "evds http 503", err.DetailText())

	var got *ResponseError
	if assert.ErrorAs(t, err, &got) {
		assert.Equal(t, "<html>maintenance</html>", string(got.Body))
	}
}
