package extlinker

// Short messages (one-liners)
const (
	MsgRootShort        = "Provision package directories into an application by symlink or copy"
	MsgLinkShort        = "Link package sources to targets, copying when symlinks fail"
	MsgUnlinkShort      = "Remove provisioned targets"
	MsgExistsShort      = "Check whether paths exist"
	MsgSupportsShort    = "Check whether a package type is provisioned"
	MsgRootsShort       = "Show the canonical extension roots"
	MsgInstallPathShort = "Show where a package is installed"
	MsgStatusShort      = "List targets recorded in the manifest"
	MsgVersionShort     = "Print version information"

	// Status messages
	MsgLinked          = "%d of %d link(s) established"
	MsgRemoved         = "%d target(s) removed"
	MsgManifestOff     = "The manifest is disabled (manifest.enabled = false)."
	MsgManifestEmpty   = "No targets recorded in %s"
	MsgSupported       = "%s is provisioned"
	MsgNotSupported    = "%s is not provisioned"
	MsgVersionTemplate = "extlinker %s (commit %s, built %s)"

	// Error messages
	MsgErrPairs     = "link expects SOURCE TARGET pairs, got %d argument(s)"
	MsgErrCopyFlags = "--copy and --no-copy cannot be combined"
	MsgErrNested    = "target %q lies inside its source %q"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (TOML or YAML)"
	MsgFlagFormat  = "Output format: auto, term, text, json"
	MsgFlagRootDir = "Application base directory (overrides root_dir)"
	MsgFlagNoCopy  = "Fail instead of copying when a symlink cannot be created"
	MsgFlagCopy    = "Copy without trying to symlink"
	MsgFlagAny     = "Succeed when at least one path exists"
)

const (
	MsgRootLong = `extlinker makes package directories available inside an application tree.

Each target is created as a symbolic link to its source. When the platform or
filesystem refuses symlinks the source is copied instead, so provisioning still
succeeds. Existing targets are never overwritten.

Which strategy materialized each target is recorded in a manifest, so
removing a copy (whose contents may have diverged from the source) is reported.`

	MsgLinkLong = `Link establishes every SOURCE TARGET pair in the order given.

Each target is symlinked to its source. If that fails the source is copied,
unless --no-copy is set or link.copy_on_failure is false. Processing stops at
the first failure; targets established before it are kept.`

	MsgLinkExample = `  # Provision one extension
  extlinker link vendor/acme/news web/typo3conf/ext/news

  # Several at once
  extlinker link pkg/a web/typo3conf/ext/a pkg/b web/typo3conf/ext/b

  # Force copies, e.g. for a container image
  extlinker link --copy pkg/a web/typo3conf/ext/a`

	MsgUnlinkLong = `Unlink removes each target: links (never what they point to), files and whole
directory trees. Targets that do not exist are skipped.`

	MsgExistsLong = `Exists reports whether every PATH exists (or, with --any, at least one).
The exit status is 1 when the answer is no. Dangling links do not exist.`

	MsgStatusLong = `Status lists every target recorded in the manifest with the strategy used to
create it. Targets that have vanished from disk are shown as stale.`
)
