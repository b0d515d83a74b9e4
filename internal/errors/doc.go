// Package errors provides the coded error type used across trait-forge.
//
// Every layer returns *Error values carrying a Code, a short message and optional
// metadata. The code survives wrapping, so a resolver failure reported deep inside a
// collection run still reaches the gRPC boundary as FailedPrecondition.
//
// # Basic Usage
//
//	err := errors.NotFoundf("run %s not found", runID)
//	err := errors.InvalidArgument("seed is required")
//
// Adding metadata:
//
//	err := errors.Configurationf("empty candidate pool for %s", category).
//	    WithMeta("category", category)
//
// Wrapping keeps the original code:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist run")
//	}
//
// # Configuration errors
//
// Broken weight tables, unknown categories in a predefined override and rule tables
// that never settle are configuration errors. They use CodeFailedPrecondition and are
// tagged so IsConfiguration can tell them apart from other precondition failures.
// They are never retried.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("seed", input.Seed, vb)
//	errors.ValidateRange("size", input.Size, 1, MaxSize, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers convert with ToGRPCError; clients convert back with FromGRPCError.
package errors
