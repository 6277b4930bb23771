// dominoai is a single-shot double-six domino move chooser: it reads one JSON request,
// searches, and writes one JSON response.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/herohde/dominoengine/pkg/engine"
	"github.com/herohde/dominoengine/pkg/ttstore"
	"github.com/pkg/errors"
	"github.com/seekerror/logw"
)

var (
	file     = flag.String("file", "", "Read the request from this file instead of stdin")
	timeMs   = flag.Int("time", 0, "Override the request's time_budget, in ms (0: use request or default)")
	depth    = flag.Int("depth", 0, "Cap root iterative deepening at this ply (0: no cap)")
	hashMB   = flag.Int("hash", 0, "Unused: the transposition table is a fixed 2^22-slot array, not resizable (kept for cmdline familiarity)")
	storeDir = flag.String("store", "", "Optional badger directory for warm-starting/persisting the transposition table across runs")
	minDepth = flag.Int("store-min-depth", ttstore.DefaultMinDepth, "Minimum TT entry depth persisted to -store")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: dominoai [options]

dominoai reads one JSON choose_move request (stdin, or -file) and writes one JSON response
to stdout.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	req, err := readRequest(*file)
	if err != nil {
		logw.Infof(ctx, "Invalid request, returning a zeroed response: %v", err)
		if err := writeResponse(engine.Response{}); err != nil {
			logw.Exitf(ctx, "Failed to write response: %v", err)
		}
		return
	}
	if *timeMs > 0 {
		req.TimeBudget = *timeMs
	}

	if *hashMB > 0 {
		logw.Infof(ctx, "-hash=%v ignored: TT size is a fixed spec constant (2^22 slots)", *hashMB)
	}

	var opts []engine.Option
	if *depth > 0 {
		opts = append(opts, engine.WithDepthLimit(*depth))
	}
	e := engine.New(ctx, opts...)

	var ts *ttstore.Store
	if *storeDir != "" {
		ts, err = ttstore.Open(*storeDir)
		if err != nil {
			logw.Exitf(ctx, "Failed to open TT store %v: %v", *storeDir, err)
		}
		defer ts.Close()

		if err := ts.Load(e.TT()); err != nil {
			logw.Exitf(ctx, "Failed to warm-start TT from %v: %v", *storeDir, err)
		}
	}

	resp := e.ChooseMove(ctx, req)

	if ts != nil {
		if err := ts.Save(e.TT(), *minDepth); err != nil {
			logw.Exitf(ctx, "Failed to persist TT to %v: %v", *storeDir, err)
		}
	}

	if err := writeResponse(resp); err != nil {
		logw.Exitf(ctx, "Failed to write response: %v", err)
	}
}

func readRequest(path string) (engine.Request, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return engine.Request{}, errors.Wrapf(err, "opening %v", path)
		}
		defer f.Close()
		r = f
	}

	var req engine.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return engine.Request{}, errors.Wrap(err, "decoding request")
	}
	return req, nil
}

func writeResponse(resp engine.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "encoding response")
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
