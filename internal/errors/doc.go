// Package errors provides structured error handling for encounter-api.
//
// Errors carry a Code, a message, an optional cause, and optional metadata:
//
//	err := errors.NotFoundf("save %q not found", saveID).
//	    WithMeta("save_id", saveID)
//
// Wrapping preserves the inner code so layers can add context without
// losing semantics:
//
//	if err := repo.Get(ctx, in); err != nil {
//	    return errors.Wrap(err, "loading save")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
//	status := errors.GetCode(err).HTTPStatus()
//
// Input validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("save_id", input.SaveID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines: repositories return NotFound/AlreadyExists with IDs in
// metadata and wrap storage errors; orchestrators return InvalidArgument
// for bad input and FailedPrecondition for illegal lifecycle transitions;
// handlers translate codes to HTTP statuses and never leak internal
// messages on 5xx responses. Engine packages reject illegal actions with
// FailedPrecondition and guarantee zero mutation on rejection.
package errors
