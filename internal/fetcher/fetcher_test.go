package fetcher

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supchaser/imagegrid/internal/app/models"
	"github.com/supchaser/imagegrid/internal/utils/errs"
	"github.com/supchaser/imagegrid/internal/utils/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	body := pngBytes(t, 4, 3)
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	})
	mux.HandleFunc("/text", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not an image"))
	})
	mux.HandleFunc("/big", func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte{0xff}, 2048))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetcher_Fetch(t *testing.T) {
	server := newImageServer(t)
	f := CreateFetcher(server.Client(), Config{MaxBytes: 1024})

	tests := []struct {
		name          string
		path          string
		expectedError error
		notError      error
	}{
		{
			name: "Success",
			path: "/ok.png",
		},
		{
			name:          "NotFound",
			path:          "/missing.png",
			expectedError: errs.ErrTransport,
			notError:      errs.ErrDecode,
		},
		{
			name:          "NotAnImage",
			path:          "/text",
			expectedError: errs.ErrDecode,
			notError:      errs.ErrTransport,
		},
		{
			name:          "TooLarge",
			path:          "/big",
			expectedError: errs.ErrImageTooLarge,
			notError:      errs.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := server.URL + tt.path
			artifact, err := f.Fetch(context.Background(), models.ResourceRequest{URL: url})

			if tt.expectedError != nil {
				assert.Nil(t, artifact)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.NotErrorIs(t, err, tt.notError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, url, artifact.URL)
			assert.Equal(t, "png", artifact.Format)
			assert.Equal(t, 4, artifact.Width())
			assert.Equal(t, 3, artifact.Height())
			assert.Positive(t, artifact.Bytes)
		})
	}
}

func TestFetcher_Fetch_StatusIsTransportError(t *testing.T) {
	server := newImageServer(t)
	f := CreateFetcher(server.Client(), Config{})

	_, err := f.Fetch(context.Background(), models.ResourceRequest{URL: server.URL + "/nope"})
	assert.ErrorIs(t, err, errs.ErrUnexpectedStatusCode)
}

func TestFetcher_Fetch_InvalidURL(t *testing.T) {
	f := CreateFetcher(nil, Config{})

	_, err := f.Fetch(context.Background(), models.ResourceRequest{URL: "://bad"})
	assert.ErrorIs(t, err, errs.ErrTransport)
}

func TestFetcher_Fetch_CancelledContext(t *testing.T) {
	server := newImageServer(t)
	f := CreateFetcher(server.Client(), Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, models.ResourceRequest{URL: server.URL + "/ok.png"})
	assert.ErrorIs(t, err, errs.ErrTransport)
}

func TestFetcher_FetchOne_DoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	body := pngBytes(t, 2, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write(body)
	}))
	defer server.Close()

	f := CreateFetcher(server.Client(), Config{})
	results := make(chan models.FetchResult, 1)

	returned := make(chan struct{})
	go func() {
		f.FetchOne(context.Background(), models.ResourceRequest{URL: server.URL}, func(r models.FetchResult) {
			results <- r
		})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("FetchOne blocked while the request was in flight")
	}

	select {
	case <-results:
		t.Fatal("callback fired before the server responded")
	default:
	}

	close(release)

	select {
	case r := <-results:
		assert.True(t, r.OK())
		assert.Equal(t, server.URL, r.Request.URL)
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestFetcher_FetchOne_DecodeFailure(t *testing.T) {
	server := newImageServer(t)
	f := CreateFetcher(server.Client(), Config{})

	results := make(chan models.FetchResult, 1)
	f.FetchOne(context.Background(), models.ResourceRequest{URL: server.URL + "/text"}, func(r models.FetchResult) {
		results <- r
	})

	select {
	case r := <-results:
		assert.False(t, r.OK())
		assert.Nil(t, r.Artifact)
		assert.ErrorIs(t, r.Err, errs.ErrDecode)
		assert.NotErrorIs(t, r.Err, errs.ErrTransport)
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestFetcher_Fetch_DeadlineExceeded(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	f := CreateFetcher(server.Client(), Config{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Fetch(ctx, models.ResourceRequest{URL: server.URL + "/slow.png"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_Fetch_ClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	client := server.Client()
	client.Timeout = 50 * time.Millisecond
	f := CreateFetcher(client, Config{})

	_, err := f.Fetch(context.Background(), models.ResourceRequest{URL: server.URL + "/slow.png"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_Fetch_LogsFailureKind(t *testing.T) {
	server := newImageServer(t)
	f := CreateFetcher(server.Client(), Config{})

	tests := []struct {
		name          string
		path          string
		expectedLog   string
		unexpectedLog string
	}{
		{
			name:          "DecodeFailure",
			path:          "/text",
			expectedLog:   "unable to decode image",
			unexpectedLog: "failed to download image",
		},
		{
			name:          "TransportFailure",
			path:          "/missing.png",
			expectedLog:   "failed to download image",
			unexpectedLog: "unable to decode image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			logger.SetLogger(zap.New(core))
			defer logger.InitTestLogger()

			_, err := f.Fetch(context.Background(), models.ResourceRequest{URL: server.URL + tt.path})
			require.Error(t, err)

			assert.Equal(t, 1, logs.FilterMessage(tt.expectedLog).Len())
			assert.Equal(t, 0, logs.FilterMessage(tt.unexpectedLog).Len())

			entry := logs.FilterMessage(tt.expectedLog).All()[0]
			assert.Equal(t, zapcore.WarnLevel, entry.Level)
			assert.Equal(t, server.URL+tt.path, entry.ContextMap()["url"])
		})
	}
}
