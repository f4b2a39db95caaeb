package service

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	entrieserrors "entrycheck/internal/entries/errors"
	"entrycheck/internal/entries/validator"
	"entrycheck/pkg/config"
	apperrors "entrycheck/pkg/errors"
	"entrycheck/pkg/locale"
	"entrycheck/pkg/model"
	"entrycheck/pkg/sanitizer"
)

type EntryService interface {
	Parse(ctx context.Context, req *model.EntryRequest) (*model.EntryResponse, error)
	ParseBatch(ctx context.Context, req *model.BatchRequest) (*model.BatchResponse, error)
}

type entryService struct {
	parser    *sanitizer.Parser
	resolver  *sanitizer.Resolver
	validator *validator.EntryValidator
	cfg       *config.Config
}

func NewEntryService(
	parser *sanitizer.Parser,
	validator *validator.EntryValidator,
	cfg *config.Config,
) EntryService {
	return &entryService{
		parser:    parser,
		resolver:  parser.Resolver(),
		validator: validator,
		cfg:       cfg,
	}
}

func (s *entryService) Parse(ctx context.Context, req *model.EntryRequest) (*model.EntryResponse, error) {
	if err := s.validator.ValidateEntry(req); err != nil {
		s.cfg.Log.Warn("Entry request validation failed",
			"kind", req.Kind,
			"error", err,
		)
		return nil, validationError("Entry request validation failed", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, apperrors.Timeout("Request cancelled before the entry was parsed")
	}

	resp, err := s.evaluate(req)
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Debug("Entry parsed",
		"kind", resp.Kind,
		"valid", resp.Valid,
		"problem", resp.Problem,
	)

	return resp, nil
}

func (s *entryService) ParseBatch(ctx context.Context, req *model.BatchRequest) (*model.BatchResponse, error) {
	if len(req.Entries) > s.cfg.MaxBatchSize {
		s.cfg.Log.Warn("Batch rejected",
			"entries", len(req.Entries),
			"max_batch_size", s.cfg.MaxBatchSize,
		)
		return nil, apperrors.Validation(
			fmt.Sprintf("Batch cannot contain more than %d entries", s.cfg.MaxBatchSize),
			map[string]any{"error": entrieserrors.ErrBatchTooLarge.Error()},
		)
	}

	if err := s.validator.ValidateBatch(req); err != nil {
		s.cfg.Log.Warn("Batch request validation failed",
			"entries", len(req.Entries),
			"error", err,
		)
		return nil, validationError("Batch request validation failed", err)
	}

	results := make([]model.EntryResponse, len(req.Entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range req.Entries {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := s.evaluate(&req.Entries[i])
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			results[i] = *resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, apperrors.Timeout("Request cancelled while parsing the batch")
		}
		s.cfg.Log.Error("Failed to parse batch",
			"entries", len(req.Entries),
			"error", err,
		)
		return nil, apperrors.Internal("Failed to parse batch", err)
	}

	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
	}

	s.cfg.Log.Info("Batch parsed",
		"entries", len(results),
		"invalid", invalid,
	)

	return &model.BatchResponse{Entries: results}, nil
}

func (s *entryService) evaluate(req *model.EntryRequest) (*model.EntryResponse, error) {
	field := req.Field
	if field == "" {
		field = req.Kind.DefaultField()
	}

	resp := &model.EntryResponse{
		Kind:  req.Kind,
		Field: field,
	}

	switch req.Kind {
	case model.KindCode:
		res := s.parser.ParseCodeValue(req.Value)
		resp.Valid = res.IsValid
		resp.Result = res
		if !res.IsValid {
			resp.Problem, resp.Message = s.resolve(res.Problems(), field, sanitizer.CodeFallback)
		}

	case model.KindPhone:
		res := s.parser.ParsePhoneValue(req.Value)
		resp.Valid = res.IsValid
		resp.Result = res
		if res.IsValid {
			if c := locale.InferCountryFromE164(res.E164); c != nil {
				resp.Region = c.Code
				resp.Timezone = c.DefaultTimezone
			}
		} else {
			resp.Problem, resp.Message = s.resolve(res.Problems(), field, sanitizer.PhoneFallback)
		}

	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s: %q", entrieserrors.ErrUnknownKind, req.Kind))
	}

	return resp, nil
}

func (s *entryService) resolve(problems []sanitizer.Problem, field, fallback string) (sanitizer.Problem, string) {
	problem, msg := s.resolver.Resolve(problems, field)
	if problem == sanitizer.ProblemNone {
		return sanitizer.ProblemUnknown, fallback
	}
	return problem, msg
}

func validationError(message string, err error) *apperrors.AppError {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		return apperrors.Validation(message, verrs.Details())
	}
	return apperrors.Validation(message, map[string]any{"error": err.Error()})
}
