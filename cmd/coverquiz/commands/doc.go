// Package commands defines the coverquiz CLI and wires dependencies for subcommands.
//
// Commands
//
//   - play        Run the interactive quiz (default)
//   - preview     Write the pixelated covers of an artist as PNG files
//   - highscore   Print or reset the stored high score
//
// # Implementation
//
// The root command loads the settings file and the catalog credentials and
// sets up logging before any subcommand runs. Each subcommand then builds
// the album source it needs: the online catalog, or the local library when
// --local (or settings.LibraryPath) names a music directory.
package commands
