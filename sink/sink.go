// Package sink opens CSV destinations by path.
//
//	-, ""          standard output
//	/dev/null      discard
//	s3://b/k       object k in bucket b, streamed with the S3 upload manager
//	anything else  a local file, created or truncated
//
// Close commits what was written. Abort discards it instead: a partly written
// file is removed and an S3 upload is cancelled, so a failed export leaves no
// object behind. Pass a sink to tabular wrapped so that the caller, not the
// encoder, decides between the two.
package sink

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gravitational/trace"
)

// Sink is a named destination.
type Sink interface {
	io.WriteCloser
	// Abort discards the destination's contents instead of committing them.
	Abort(cause error) error
	// Key identifies the destination in logs and errors.
	Key() string
}

// Open returns the sink named by path. S3 paths load the default AWS
// configuration.
func Open(ctx context.Context, path string) (Sink, error) {
	switch path {
	case "-", "":
		return &fileSink{WriteCloser: nopCloser{os.Stdout}, key: "stdout"}, nil

	case "/dev/null":
		return &fileSink{WriteCloser: nopCloser{io.Discard}, key: "null"}, nil
	}

	if strings.HasPrefix(path, "s3://") {
		bucket, key, err := ParseS3Path(path)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		return NewS3Writer(ctx, NewUploader(s3.NewFromConfig(cfg)), bucket, key), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return &fileSink{WriteCloser: f, key: path, path: path}, nil
}

// ParseS3Path splits s3://bucket/key.
func ParseS3Path(path string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(path, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", trace.BadParameter("invalid s3 path: %q", path)
	}
	return parts[0], parts[1], nil
}

type fileSink struct {
	io.WriteCloser
	key  string
	path string // removed on Abort; empty for stdout and discard
}

func (f *fileSink) Abort(error) error {
	err := f.Close()
	if f.path == "" {
		return trace.Wrap(err)
	}
	if rmErr := os.Remove(f.path); rmErr != nil && !os.IsNotExist(rmErr) {
		return trace.NewAggregate(err, rmErr)
	}
	return trace.Wrap(err)
}

func (f *fileSink) Key() string {
	return f.key
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
