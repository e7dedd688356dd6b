// resolve.go holds the shared resolution path used by the describe and
// check commands: build the bringup description, resolve it with the
// caller's overrides, and reject overrides that name no declared argument.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gz-tools/gzlaunch/internal/bringup"
	"github.com/gz-tools/gzlaunch/internal/launch"
	"github.com/gz-tools/gzlaunch/internal/model"
)

// resolveBringup resolves the bringup launch description with the given
// overrides. A nil shares resolver leaves include sources in their
// symbolic placeholder form.
//
// Unknown override names are an error here, not in the framework: the
// description itself accepts and ignores them the way a host runner
// would, but silently dropping a typo like "namespce:=robot1" makes for
// a miserable debugging session, so the CLI refuses.
func resolveBringup(overrides map[string]string, shares launch.ShareResolver) (*launch.Resolved, error) {
	ctx := launch.NewContext(overrides)
	if shares != nil {
		ctx.WithShareResolver(shares)
	}

	resolved, err := bringup.NewDescription().Resolve(ctx)
	if err != nil {
		// Preserve a nested CLIError's exit code — a failed package-share
		// lookup inside source resolution should still exit with the
		// package-not-found code, not the generic one.
		code := model.ExitGeneralError
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			code = cliErr.Code
		}
		return nil, model.WrapCLIError(code, "failed to resolve launch description", err)
	}

	if unknown := ctx.UnknownOverrides(); len(unknown) > 0 {
		return nil, model.NewCLIError(
			model.ExitInvalidOverride,
			fmt.Sprintf("unknown launch argument(s): %s (see 'gzlaunch args' for the declared set)",
				strings.Join(unknown, ", ")),
		)
	}

	return resolved, nil
}
