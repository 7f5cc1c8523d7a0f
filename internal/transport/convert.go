package transport

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/navneetha-rajan/Ride-Share-Application/internal/cluster"
)

// toStatus maps domain errors onto gRPC status codes so callers on the
// other side of the wire can tell a fencing rejection from a missing key.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cluster.ErrStaleEpoch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, cluster.ErrNotMaster):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, cluster.ErrNoAvailableMaster):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, cluster.ErrReplicationTimeout):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, cluster.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, cluster.ErrUnknownNode):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, cluster.ErrUnknownEntity):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// fromStatus restores the matching sentinel on the client side so
// errors.Is keeps working across the process boundary.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sentinel error
	switch st.Code() {
	case codes.FailedPrecondition:
		if strings.Contains(st.Message(), cluster.ErrNotMaster.Error()) {
			sentinel = cluster.ErrNotMaster
		} else {
			sentinel = cluster.ErrStaleEpoch
		}
	case codes.Unavailable:
		sentinel = cluster.ErrNoAvailableMaster
	case codes.DeadlineExceeded:
		sentinel = cluster.ErrReplicationTimeout
	case codes.NotFound:
		sentinel = cluster.ErrNotFound
	case codes.InvalidArgument:
		sentinel = cluster.ErrUnknownEntity
	default:
		return err
	}
	return fmt.Errorf("%s: %w", st.Message(), sentinel)
}
