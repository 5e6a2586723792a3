package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/flagx"
)

var serverFlags = []string{
	"-a", "-x", "-m", "-d", "-t", "-k", "-l",
	"-n", "-e", "-p",
	"-b", "-g", "-s3", "-u", "-w",
}

// parseFlags populates Config fields from command-line flags.
//
//	-a string   gRPC bind address (":50051")
//	-x string   HTTP bind address (":8080")
//	-m string   storage backend, postgres or memory
//	-d string   PostgreSQL DSN
//	-t int      token validity, minutes (0 = until logout)
//	-k int      bcrypt cost
//	-l string   log level
//	-n/-e/-p    bootstrap user name, email, password
//	-b/-g/-s3   S3 bucket, region, base endpoint
//	-u/-w       S3 root user and password
//
// Unknown arguments are dropped by flagx.FilterArgs first. A malformed value
// panics, as for the JSON overlay.
func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port of the gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "x", config.EndpointAddrHTTP, "address and port of the HTTP server")
	fs.StringVar(&config.Storage, "m", config.Storage, "storage backend (postgres|memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes, 0 = no expiry)")

	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug|info|warn|error)")

	fs.StringVar(&config.BootstrapUserName, "n", config.BootstrapUserName, "bootstrap user name")
	fs.StringVar(&config.BootstrapUserEmail, "e", config.BootstrapUserEmail, "bootstrap user email")
	fs.StringVar(&config.BootstrapUserPassword, "p", config.BootstrapUserPassword, "bootstrap user password")

	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "s3", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "w", config.S3RootPassword, "S3 root password")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
