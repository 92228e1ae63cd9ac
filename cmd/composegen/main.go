/*
Composegen generates a Compose file from Unicode character data.

The generator loads UnicodeData.txt and Blocks.txt (downloading them
from unicode.org into the resource directory on first use), reads a
hand-authored definitions file, derives candidate sequences for every
named codepoint up to the configured ceiling, and writes

  - a sorted, regenerable mirror of the definitions (-sorted), and
  - the final Compose rule file (-out).

Usage

	composegen [-v] [-res dir] [-defs file] [-out file] [-sorted file]
	           [-max codepoint] [-nosort] [-nocheck]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/compose"
	"github.com/npillmayer/compose/deffile"
	"github.com/npillmayer/compose/rules"
	"github.com/npillmayer/compose/ucd"
	"github.com/npillmayer/compose/xcompose"
)

var logger = log.New(os.Stderr, "composegen: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	resDir := flag.String("res", "./res", "directory for cached UCD files")
	defsPath := flag.String("defs", "definitions.txt", "hand-authored definitions file")
	outPath := flag.String("out", defaultOutPath(), "Compose file to write")
	sortedPath := flag.String("sorted", "definitions_sorted.txt", "sorted definitions mirror to write")
	maxCP := flag.Int("max", 0x1FFFF, "codepoint ceiling (BMP+SMP by default)")
	noSort := flag.Bool("nosort", false, "skip writing the sorted definitions mirror")
	noCheck := flag.Bool("nocheck", false, "skip duplicate and shadow checking")
	flag.Parse()
	verbose = *doVerbose
	then := time.Now()

	props, blocks := loadUCD(*resDir)
	table := loadDefinitions(*defsPath, props)

	if !*noSort {
		if verbose {
			logger.Printf("sorting…")
		}
		writeSorted(*sortedPath, table, props, blocks)
	}

	deriver := compose.NewDeriver(props, table.Definitions, compose.DefaultConfig())
	set := rules.NewSet()
	writeCompose(*outPath, deriver, table, set, rune(*maxCP), !*noCheck)

	if !*noCheck {
		if verbose {
			logger.Printf("looking for shadows…")
		}
		shadows := set.Shadows()
		for _, s := range shadows {
			logger.Printf("warning: [%s] shadows [%s]", s.Short, s.Long)
		}
		logger.Printf("%d rules, %d shadowed", set.Len(), len(shadows))
	}
	logger.Printf("done! %s", time.Since(then))
}

func loadUCD(dir string) (*ucd.Table, *ucd.Blocks) {
	defer timeTrack(time.Now(), "loading UCD tables")
	f, err := ucd.Fetch(dir, "UnicodeData.txt")
	checkFatal(err)
	defer f.Close()
	props, err := ucd.Load(f)
	checkFatal(err)
	b, err := ucd.Fetch(dir, "Blocks.txt")
	checkFatal(err)
	defer b.Close()
	blocks, err := ucd.LoadBlocks(b)
	checkFatal(err)
	return props, blocks
}

func loadDefinitions(path string, props *ucd.Table) *deffile.Table {
	if verbose {
		logger.Printf("reading %s", path)
	}
	f, err := os.Open(path)
	checkFatal(err)
	defer f.Close()
	table, err := deffile.Read(f, props)
	checkFatal(err)
	return table
}

func writeSorted(path string, table *deffile.Table, props *ucd.Table, blocks *ucd.Blocks) {
	defer timeTrack(time.Now(), "writing sorted definitions")
	f, err := os.Create(path)
	checkFatal(err)
	defer f.Close()
	checkFatal(deffile.WriteSorted(f, table, props, blocks))
}

func writeCompose(path string, deriver *compose.Deriver, table *deffile.Table,
	set *rules.Set, maxCP rune, check bool) {
	//
	defer timeTrack(time.Now(), "writing Compose rules")
	f, err := os.Create(path)
	checkFatal(err)
	defer f.Close()
	xw := xcompose.NewWriter(f)
	checkFatal(xw.WriteHeader(userLocale()))
	emit := func(keys compose.Keys, text, comment string) {
		if check {
			set.Add(keys, text, comment)
		}
		checkFatal(xw.WriteRule(keys, text, comment))
	}
	if verbose {
		logger.Printf("writing characters…")
	}
	deriver.Project(maxCP, emit)
	if verbose {
		logger.Printf("writing macros…")
	}
	compose.ProjectMacros(table.Macros, emit)
	checkFatal(xw.Flush())
}

// The generated file includes the system Compose table for the user's
// locale; X11 resolves "%L" against it.
func userLocale() string {
	locale, err := jj.DetectIETF()
	if err != nil {
		logger.Printf("could not detect user locale, assuming en-US")
		return "en-US"
	}
	if verbose {
		logger.Printf("detected user locale %s", locale)
	}
	return locale
}

func defaultOutPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".XCompose"
	}
	return filepath.Join(home, ".XCompose")
}

// --- Util -------------------------------------------------------------

func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
