// Package command provides CLI command definitions for d3ck-cfg.
//
// d3ck-cfg resolves configuration the same way a program using pkg/cfg
// does and prints the result:
//
//	d3ck-cfg --stage dev show
//	d3ck-cfg -d /etc/app get webHost
//	d3ck-cfg --set webPort=9468 jget web port
//	d3ck-cfg files
//	d3ck-cfg --stage prod stage prod && deploy
//
// Global flags control how the configuration is located and merged and
// how results are printed. Every command except version loads the
// configuration once.
package command
