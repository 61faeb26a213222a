// Package commands implements the koreannum command line.
//
//	koreannum serve [--addr :8080]
//	koreannum render --lang pl --theme dark -o page.html
package commands
