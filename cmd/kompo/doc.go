// Command kompo — a CLI walkthrough of the composition idiom packages.
//
// Each subcommand exercises one package end to end:
//
//   - basket:  capsule (module idiom); --reveal switches to the flattened
//     export surface built by capsule.Reveal.
//   - vehicle: construct (parameterized initializer); --closure switches from
//     the shared-method form to the per-instance closure form.
//   - build:   factory (discriminator-driven construction); unknown kinds
//     fall back to the configured default builder.
//   - ledger:  store (SQLite ledger) guarded by the singleton accessor.
//
// Configuration
//
// kompo reads config.yaml from the config directory (default ./.kompo,
// overridable with --config-dir). Recognized keys:
//
//	factory:
//	  default_kind: car     # fallback builder for unknown discriminators
//	store:
//	  path: kompo.db        # ledger location; ":memory:" for ephemeral
//
// A missing config file is not an error; defaults apply.
//
// Logging
//
// Structured logs go to stderr via zap; --debug lowers the level.
package main
