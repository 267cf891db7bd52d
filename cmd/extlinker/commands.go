package extlinker

import (
	"fmt"
	"time"

	"github.com/arthur-debert/extlinker/internal/version"
	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/arthur-debert/extlinker/pkg/paths"
	"github.com/arthur-debert/extlinker/pkg/types"
	"github.com/arthur-debert/extlinker/pkg/ui"
	"github.com/spf13/cobra"
)

func newLinkCmd(opts *globalOptions) *cobra.Command {
	var noCopy, forceCopy bool

	cmd := &cobra.Command{
		Use:     "link SOURCE TARGET [SOURCE TARGET...]",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrPairs, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if noCopy && forceCopy {
				return errors.New(errors.ErrInvalidInput, MsgErrCopyFlags)
			}
			overrides := map[string]interface{}{}
			if noCopy {
				overrides["link.copy_on_failure"] = false
			}

			a, err := newApp(cmd, opts, overrides)
			if err != nil {
				return err
			}
			if err := a.openManifest(false); err != nil {
				return err
			}
			args, err = normalizeAll(args)
			if err != nil {
				return err
			}

			specs := make([]types.LinkSpec, 0, len(args)/2)
			for i := 0; i < len(args); i += 2 {
				if paths.ContainsPath(args[i], args[i+1]) {
					return errors.Newf(errors.ErrInvalidInput, MsgErrNested, args[i+1], args[i]).
						WithDetail("source", args[i]).
						WithDetail("target", args[i+1])
				}
				specs = append(specs, types.LinkSpec{Source: args[i], Target: args[i+1]})
			}

			strategies, linkErr := a.provisioner(forceCopy).Establish(specs, a.cfg.Link.CopyOnFailure)

			report := &ui.Report{Action: "link", Message: fmt.Sprintf(MsgLinked, len(strategies), len(specs))}
			for i, spec := range specs {
				item := ui.Item{Source: spec.Source, Target: spec.Target}
				switch {
				case i < len(strategies):
					item.Strategy = string(strategies[i])
					item.Status = ui.StatusLinked
					if strategies[i] == types.StrategyCopy {
						item.Status = ui.StatusCopied
					}
				case i == len(strategies):
					item.Status = ui.StatusFailed
					item.Detail = string(errors.GetErrorCode(linkErr))
				default:
					item.Status = ui.StatusSkipped
				}
				report.Add(item)
			}
			if err := a.renderer.RenderReport(report); err != nil {
				return err
			}
			return linkErr
		},
	}

	cmd.Flags().BoolVar(&noCopy, "no-copy", false, MsgFlagNoCopy)
	cmd.Flags().BoolVar(&forceCopy, "copy", false, MsgFlagCopy)
	return cmd
}

func newUnlinkCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "unlink TARGET...",
		Short:   MsgUnlinkShort,
		Long:    MsgUnlinkLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, nil)
			if err != nil {
				return err
			}
			if err := a.openManifest(false); err != nil {
				return err
			}
			targets, err := normalizeAll(args)
			if err != nil {
				return err
			}

			report := &ui.Report{Action: "unlink", Message: fmt.Sprintf(MsgRemoved, len(targets))}
			for _, target := range targets {
				item := ui.Item{Status: ui.StatusRemoved, Target: target}
				if a.store != nil {
					if record, ok := a.store.Lookup(target); ok {
						item.Source = record.Source
						item.Strategy = string(record.Strategy)
					}
				}
				report.Add(item)
			}

			if err := a.provisioner(false).RemoveAll(types.RemovalSet(targets)); err != nil {
				return err
			}
			return a.renderer.RenderReport(report)
		},
	}
}

func newExistsCmd(opts *globalOptions) *cobra.Command {
	var anyOf bool

	cmd := &cobra.Command{
		Use:     "exists PATH...",
		Short:   MsgExistsShort,
		Long:    MsgExistsLong,
		GroupID: "query",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, nil)
			if err != nil {
				return err
			}
			targets, err := normalizeAll(args)
			if err != nil {
				return err
			}

			p := a.provisioner(false)
			report := &ui.Report{Action: "exists"}
			for _, target := range targets {
				status := ui.StatusMissing
				if p.AllExist([]string{target}) {
					status = ui.StatusPresent
				}
				report.Add(ui.Item{Status: status, Target: target})
			}
			if err := a.renderer.RenderReport(report); err != nil {
				return err
			}

			ok := p.AllExist(targets)
			if anyOf {
				ok = p.AnyExist(targets)
			}
			if !ok {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&anyOf, "any", false, MsgFlagAny)
	return cmd
}

func newSupportsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "supports TYPE",
		Short:   MsgSupportsShort,
		GroupID: "query",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, nil)
			if err != nil {
				return err
			}

			packageType := args[0]
			supported := a.cfg.Classifier().Supports(packageType)
			report := &ui.Report{Action: "supports"}
			if supported {
				report.Message = fmt.Sprintf(MsgSupported, packageType)
				report.Add(ui.Item{Status: ui.StatusYes, Name: packageType})
			} else {
				report.Message = fmt.Sprintf(MsgNotSupported, packageType)
				report.Add(ui.Item{Status: ui.StatusNo, Name: packageType})
			}
			if err := a.renderer.RenderReport(report); err != nil {
				return err
			}
			if !supported {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}

func newRootsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "roots [BASE]",
		Short:   MsgRootsShort,
		GroupID: "query",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, nil)
			if err != nil {
				return err
			}

			base := a.cfg.RootDir
			if len(args) == 1 {
				base = args[0]
			}
			roots, err := a.cfg.Classifier().DeriveRoots(base)
			if err != nil {
				return err
			}

			p := a.provisioner(false)
			report := &ui.Report{Action: "roots"}
			for _, root := range []struct{ name, path string }{
				{"extension", roots.ExtensionDir},
				{"system", roots.SystemExtensionDir},
			} {
				status := ui.StatusMissing
				if p.AllExist([]string{root.path}) {
					status = ui.StatusPresent
				}
				report.Add(ui.Item{Status: status, Name: root.name, Target: root.path})
			}
			return a.renderer.RenderReport(report)
		},
	}
}

func newInstallPathCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "install-path TYPE KEY",
		Short:   MsgInstallPathShort,
		GroupID: "query",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, nil)
			if err != nil {
				return err
			}

			classifier := a.cfg.Classifier()
			roots, err := classifier.DeriveRoots(a.cfg.RootDir)
			if err != nil {
				return err
			}
			target, err := classifier.InstallPath(roots, args[0], args[1])
			if err != nil {
				return err
			}

			status := ui.StatusMissing
			if a.provisioner(false).AllExist([]string{target}) {
				status = ui.StatusPresent
			}
			report := &ui.Report{Action: "install-path"}
			report.Add(ui.Item{Status: status, Name: args[1], Target: target})
			return a.renderer.RenderReport(report)
		},
	}
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "query",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, nil)
			if err != nil {
				return err
			}
			if err := a.openManifest(true); err != nil {
				return err
			}
			if a.store == nil {
				return a.renderer.RenderMessage(MsgManifestOff)
			}

			p := a.provisioner(false)
			report := &ui.Report{Action: "status", Tabular: true}
			for _, entry := range a.store.Entries() {
				status := ui.StatusPresent
				if !p.AllExist([]string{entry.Target}) {
					status = ui.StatusStale
				}
				report.Add(ui.Item{
					Status:   status,
					Source:   entry.Source,
					Target:   entry.Target,
					Strategy: string(entry.Strategy),
					Created:  entry.Created.Local().Format(time.RFC3339),
				})
			}
			if len(report.Items) == 0 {
				report.Message = fmt.Sprintf(MsgManifestEmpty, a.store.Path())
			}
			return a.renderer.RenderReport(report)
		},
	}
}

func newVersionCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgVersionTemplate, version.Version, version.Commit, version.Date))
		},
	}
}
