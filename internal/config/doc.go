// Package config provides configuration management for coverquiz.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Reading catalog credentials from the environment or a .env file
//
// # Default Settings
//
// Use DefaultSettings() to get the stock game:
//
//	settings := config.DefaultSettings()
//	// Spotify endpoints, 10 albums, win at 3, 55px blocks, 340x340 display
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Credentials
//
// CLIENT_ID and CLIENT_SECRET are read from the process environment after
// an optional .env file has been loaded:
//
//	err := settings.LoadCredentials(".env")
package config
