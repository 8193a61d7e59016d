package api

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	pb "github.com/openbess/bessd/api/proto"
)

// errorf builds the structured error carried inside a response body. The
// transport-level status stays OK.
func errorf(code unix.Errno, format string, args ...interface{}) *pb.Error {
	return &pb.Error{
		Err:    int64(code),
		Errmsg: fmt.Sprintf(format, args...),
	}
}

// errnoOf extracts the errno wrapped in a driver error, defaulting to EINVAL
// for errors that carry none.
func errnoOf(err error) unix.Errno {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return unix.EINVAL
}

// driverError surfaces a driver failure's errno with a message formatted by
// the caller.
func driverError(err error, format string, args ...interface{}) *pb.Error {
	return &pb.Error{
		Err:    int64(errnoOf(err)),
		Errmsg: fmt.Sprintf(format, args...),
	}
}
