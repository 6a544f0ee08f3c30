package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	service ServiceProvider
}

func NewProfilesCmd(service ServiceProvider) *cobra.Command {
	pc := &ProfilesCmd{service: service}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List franchise profiles from the profiles file",
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	svc, err := pc.service(cmd)
	if err != nil {
		return err
	}

	profiles, err := svc.ListFranchises(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list franchise profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No franchise profiles found")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Franchise profiles:")
	for _, p := range profiles {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.Name, p.Number, p.Department, p.Owner)
	}
	return nil
}
