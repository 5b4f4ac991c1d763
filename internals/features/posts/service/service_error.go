// file: internals/features/posts/service/service_error.go
package service

import "errors"

/* =========================================================
   Closed error set — boundary mapping kind → status hanya
   terjadi satu kali di controller.
   ========================================================= */

type ErrorKind int

const (
	KindValidation    ErrorKind = iota + 1 // input client jelek / aturan type-content
	KindMediaRejected                      // MIME di luar allow-list, kebanyakan file, kegedean
	KindProcessing                         // transcode / pipeline file gagal
	KindNotFound                           // id tidak ada
	KindStore                              // fault dari persistence layer
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying, boleh nil
}

func (e *ServiceError) Error() string { return e.Message }
func (e *ServiceError) Unwrap() error { return e.Err }

// AsServiceError: ekstrak *ServiceError dari error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	ok := errors.As(err, &se)
	return se, ok
}

func errValidation(msg string) error {
	return &ServiceError{Kind: KindValidation, Message: msg}
}

func errMediaRejected(msg string) error {
	return &ServiceError{Kind: KindMediaRejected, Message: msg}
}

func errProcessing(msg string, err error) error {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	return &ServiceError{Kind: KindProcessing, Message: msg, Err: err}
}

func errNotFound() error {
	return &ServiceError{Kind: KindNotFound, Message: "Post tidak ditemukan"}
}

func errStore(err error) error {
	return &ServiceError{Kind: KindStore, Message: err.Error(), Err: err}
}
