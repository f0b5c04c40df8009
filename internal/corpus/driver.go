package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kittclouds/acquigo/internal/roles"
	"github.com/kittclouds/acquigo/internal/store"
	"github.com/kittclouds/acquigo/pkg/analysis"
	"github.com/kittclouds/acquigo/pkg/model"
	"github.com/kittclouds/acquigo/pkg/parser"
)

// Driver loads corpora into a store.
type Driver struct {
	cfg   *Config
	store store.Storer
	reg   *Registry
}

// NewDriver returns a driver writing to st.
func NewDriver(cfg *Config, st store.Storer) *Driver {
	return &Driver{cfg: cfg, store: st, reg: NewRegistry()}
}

// Run loads every configured corpus. A session that fails to parse is
// logged and skipped; the load fails only on store errors or when a
// corpus matches no session files.
func (d *Driver) Run(ctx context.Context) error {
	for i := range d.cfg.Corpora {
		if err := d.loadCorpus(ctx, &d.cfg.Corpora[i]); err != nil {
			return err
		}
	}

	for _, u := range d.reg.All() {
		if err := d.store.InsertUniqueSpeaker(u); err != nil {
			return err
		}
	}

	counts, err := d.store.Counts()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"sessions":   counts.Sessions,
		"speakers":   counts.Speakers,
		"utterances": counts.Utterances,
		"words":      counts.Words,
		"morphemes":  counts.Morphemes,
	}).Info("load complete")
	return nil
}

func (d *Driver) loadCorpus(ctx context.Context, cc *CorpusConfig) error {
	paths, err := filepath.Glob(cc.Sessions)
	if err != nil {
		return fmt.Errorf("corpus %s: bad sessions glob: %w", cc.Name, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("corpus %s: no sessions match %s", cc.Name, cc.Sessions)
	}
	sort.Strings(paths)

	log.WithFields(log.Fields{
		"corpus":   cc.Name,
		"sessions": len(paths),
	}).Info("loading corpus")

	mapper := roles.NewMapper().WithLabelMacroRoles(cc.LabelMacroRoles)
	policies := parser.Policies{
		MorphTierKeys:     cc.MorphTiers,
		MorphemeDelimiter: cc.MorphemeDelimiter,
		MainMorphemeTier:  cc.MainMorphemeTier,
	}

	workers := d.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	sessions := make(chan *model.Session, workers)
	stats := analysis.NewAnalyzer()

	g, gctx := errgroup.WithContext(ctx)

	// One writer drains the channel; the store serializes internally
	// but a single writer keeps session order deterministic per run.
	g.Go(func() error {
		for sess := range sessions {
			if _, err := d.store.InsertSession(sess); err != nil {
				return fmt.Errorf("corpus %s: session %s: %w", cc.Name, sess.SourceID, err)
			}
			stats.Add(sess)
		}
		return nil
	})

	pg, pctx := errgroup.WithContext(gctx)
	pg.SetLimit(workers)
	for _, path := range paths {
		path := path
		pg.Go(func() error {
			if err := pctx.Err(); err != nil {
				return err
			}
			sess, err := parser.New(path, cc.Name, policies, mapper).Parse()
			if err != nil {
				log.WithFields(log.Fields{
					"corpus":  cc.Name,
					"session": path,
				}).WithError(err).Warn("skipping unreadable session")
				return nil
			}
			if len(sess.Utterances) == 0 {
				log.WithFields(log.Fields{
					"corpus":  cc.Name,
					"session": path,
				}).Warn("skipping empty session")
				return nil
			}
			for _, sp := range sess.Speakers {
				d.reg.Resolve(cc.Name, sp)
			}
			select {
			case sessions <- sess:
				return nil
			case <-pctx.Done():
				return pctx.Err()
			}
		})
	}

	err = pg.Wait()
	close(sessions)
	if werr := g.Wait(); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return err
	}

	result := stats.Result()
	log.WithFields(log.Fields{
		"corpus":           cc.Name,
		"sessions":         result.SessionCount,
		"utterances":       result.UtteranceCount,
		"words":            result.WordCount,
		"type_token_ratio": result.TypeTokenRatio,
		"mlu":              result.MLU,
	}).Info("corpus loaded")
	return nil
}
