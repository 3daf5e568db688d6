package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const (
	versionCommandUseConstant              = "version"
	versionCommandShortDescriptionConstant = "Print the pulsarlab version"
	versionOutputTemplateConstant          = "%s %s\n"
	versionUnknownConstant                 = "(devel)"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   versionCommandUseConstant,
		Short: versionCommandShortDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			_, writeError := fmt.Fprintf(command.OutOrStdout(), versionOutputTemplateConstant, applicationNameConstant, resolveVersion())
			return writeError
		},
	}
}

func resolveVersion() string {
	buildInformation, buildInformationAvailable := debug.ReadBuildInfo()
	if !buildInformationAvailable || len(buildInformation.Main.Version) == 0 {
		return versionUnknownConstant
	}
	return buildInformation.Main.Version
}
