// Package config loads statecore.json.
//
// # Configuration File Structure
//
//	{
//	  "logLevel": "info",
//	  "logFormat": "text",
//	  "metrics": {
//	    "enabled": true,
//	    "addr": "127.0.0.1:9090",
//	    "namespace": "statecore"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "statecore"
//	  },
//	  "demo": {
//	    "selectionSize": 100000
//	  }
//	}
//
// Every field is optional; missing fields take the defaults from New.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Log level:", cfg.LogLevel)
package config
