// Package config provides configuration parsing for vlite projects.
//
// The configuration is stored in vlite.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "counter",
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "readTimeout": "10s",
//	    "writeTimeout": "10s",
//	    "allowedOrigins": ["https://example.com"]
//	  },
//	  "render": {"pretty": true, "indent": "  "},
//	  "log": {"level": "info", "format": "json"},
//	  "metrics": {"enabled": true, "path": "/metrics", "namespace": "vlite"},
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "apps/",
//	    "region": "us-east-1"
//	  }
//	}
//
// VLITE_PORT and VLITE_LOG_LEVEL override the file.
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
