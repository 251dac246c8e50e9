package worker

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/logging"
)

// Replayer returns a ReplayFunc that rebuilds each record as a session
// configured by cfg and evaluates its final position.
func Replayer(cfg *config.GameConfig, logger *zap.Logger) ReplayFunc {
	logger = logging.OrNop(logger)
	return func(job Job) Result {
		res := Result{Index: job.Index, Name: job.Name, ID: job.Record.ID}

		s, err := game.FromRecord(job.Record, cfg, game.WithLogger(logger.With(zap.String("file", job.Name))))
		if err != nil {
			var recErr *errors.RecordError
			if errors.As(err, &recErr) && recErr.File == "" {
				recErr.File = job.Name
			}
			res.Err = err
			return res
		}
		res.ID = s.ID()
		res.Plies = s.Ply()
		res.Moves = s.History()

		if res.Outcome, err = s.MatchState(); err != nil {
			res.Err = errors.Wrap(err, job.Name)
			return res
		}
		if res.Position, err = s.CurrentPosition(); err != nil {
			res.Err = errors.Wrap(err, job.Name)
		}
		return res
	}
}
