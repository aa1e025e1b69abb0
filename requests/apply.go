package requests

import (
	"fmt"

	"github.com/brettbedarf/dirforest"
	"github.com/brettbedarf/dirforest/internal/util"
	"github.com/hashicorp/go-multierror"
)

// Apply runs reqs in order against op. A failing request is logged and
// skipped; the rest still run. It returns how many requests succeeded and
// every failure, each wrapped with its request ID.
func Apply(op dirforest.Operator, reqs []Request) (int, error) {
	logger := util.GetLogger("Requests.Apply")

	var errs *multierror.Error
	applied := 0
	for _, req := range reqs {
		var err error
		switch req.Op {
		case CreateOp:
			err = op.Create(req.Path)
		case MoveOp:
			err = op.Move(req.Path, req.Destination)
		case DeleteOp:
			err = op.Delete(req.Path)
		default:
			err = fmt.Errorf("unknown op: %q", req.Op)
		}
		if err != nil {
			logger.Debug().Err(err).Str("id", req.ID).Str("request", req.String()).Msg("Failed to apply request")
			errs = multierror.Append(errs, fmt.Errorf("request %s (%s): %w", req.ID, req.String(), err))
			continue
		}
		applied++
		logger.Trace().Str("id", req.ID).Str("request", req.String()).Msg("Applied request")
	}
	logger.Debug().Int("applied", applied).Int("total", len(reqs)).Msg("Applied seed requests")
	return applied, errs.ErrorOrNil()
}
