package sink

import (
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gravitational/trace"
)

// Uploader uploads one object from a reader. *manager.Uploader satisfies it.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// NewUploader returns the multipart upload manager for client.
func NewUploader(client manager.UploadAPIClient) Uploader {
	return manager.NewUploader(client)
}

// S3Writer streams everything written to it into a single S3 object.
type S3Writer struct {
	bucket string
	key    string

	pw     *io.PipeWriter
	done   chan error
	mu     sync.Mutex
	closed bool
}

// NewS3Writer starts the upload of s3://bucket/key. The object is complete
// once Close returns nil.
func NewS3Writer(ctx context.Context, uploader Uploader, bucket, key string) *S3Writer {
	pr, pw := io.Pipe()
	done := make(chan error, 1)

	go func() {
		_, err := uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket:      &bucket,
			Key:         &key,
			Body:        pr,
			ContentType: ptr("text/csv"),
		})
		// Unblock writers if the upload gave up early.
		pr.CloseWithError(err)
		done <- err
		close(done)
	}()

	return &S3Writer{bucket: bucket, key: key, pw: pw, done: done}
}

// Write implements io.Writer.
func (w *S3Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, trace.BadParameter("write on closed S3Writer")
	}
	return w.pw.Write(p)
}

// Close ends the object and waits for the upload to finish.
func (w *S3Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	w.pw.Close()
	return trace.Wrap(<-w.done)
}

// Abort fails the upload with cause instead of completing it. The upload
// manager gives up on a failing body, so no object is written.
func (w *S3Writer) Abort(cause error) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	if cause == nil {
		cause = errAborted
	}
	w.pw.CloseWithError(cause)
	<-w.done
	return nil
}

// Key returns the s3:// URL of the object.
func (w *S3Writer) Key() string {
	return "s3://" + w.bucket + "/" + w.key
}

var errAborted = trace.Errorf("upload aborted")

func ptr[T any](v T) *T { return &v }
