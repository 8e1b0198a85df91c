package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/ordtrees/Trees"
	"github.com/g-m-twostay/ordtrees/Trees/TreeUtils"
	"github.com/rs/zerolog"
)

const (
	variantArray     = "array"
	variantLinked    = "linked"
	variantImmutable = "immutable"
)

type demo struct {
	out io.Writer
	log zerolog.Logger
	st  styles
	cfg config
}

func newDemo(out io.Writer, log zerolog.Logger, cfg config) *demo {
	return &demo{out: out, log: log, st: newStyles(out, cfg.Plain), cfg: cfg}
}

func (d *demo) runAll() error {
	for _, name := range d.cfg.Variants {
		tree, err := d.build(name)
		if err != nil {
			return err
		}
		d.run(name, tree)
	}
	return nil
}

// build the tree for a variant. The immutable view wraps a linked tree already holding the
// values, since nothing can be added through the view itself.
func (d *demo) build(name string) (Trees.Tree[int], error) {
	switch name {
	case variantArray:
		return Trees.NewArray[int](), nil
	case variantLinked:
		return Trees.NewLinked[int](), nil
	default:
		inner := Trees.NewLinked[int]()
		for _, v := range d.cfg.Values {
			if err := inner.Add(v); err != nil {
				d.reject("add", v, err)
			}
		}
		view, err := Trees.NewImmutable[int](inner)
		if err != nil {
			return nil, err
		}
		return view, nil
	}
}

func (d *demo) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func (d *demo) reject(op string, v int, err error) {
	d.printf("%s\n", d.st.fail.Render("! "+err.Error()))
	d.log.Warn().Err(err).Str("op", op).Int("value", v).Stringer("kind", Trees.KindOf(err)).Msg("operation rejected")
}

func (d *demo) show(tree Trees.Tree[int]) {
	d.printf("%s\n", strings.TrimRight(d.st.tree(tree.String()), "\n"))
}

func (d *demo) run(name string, tree Trees.Tree[int]) {
	d.printf("%s\n", d.st.title.Render("== "+name+" tree =="))
	log := d.log.With().Str("variant", name).Logger()

	for _, v := range d.cfg.Values {
		if err := tree.Add(v); err != nil {
			d.reject("add", v, err)
		}
	}
	d.show(tree)

	for _, v := range d.cfg.Probe {
		in, err := tree.Contains(v)
		if err != nil {
			d.reject("contains", v, err)
			continue
		}
		d.printf("contains %d: %s\n", v, d.st.bool(in))
	}

	for _, v := range d.cfg.Remove {
		if err := tree.Remove(v); err != nil {
			d.reject("remove", v, err)
			continue
		}
		d.printf("removed %d\n", v)
		d.show(tree)
	}

	above := func(x int) bool { return x > d.cfg.Threshold }
	ok, _ := TreeUtils.Exists(tree, above)
	d.printf("exists x > %d: %s\n", d.cfg.Threshold, d.st.bool(ok))
	if found, err := TreeUtils.FindAll(tree, above); err != nil {
		d.reject("find all", d.cfg.Threshold, err)
	} else {
		d.printf("find all x > %d:\n", d.cfg.Threshold)
		d.show(found)
	}
	ok, _ = TreeUtils.CheckForAll(tree, above)
	d.printf("all x > %d: %s\n", d.cfg.Threshold, d.st.bool(ok))

	var elems []string
	TreeUtils.ForEach(tree, func(x int) { elems = append(elems, fmt.Sprint(x)) })
	d.printf("elements: %s\n", strings.Join(elems, " "))

	c := Trees.Container(tree)
	log.Info().Int("size", c.Size()).Int("height", tree.Height()).Msg("before clear")
	if err := tree.Clear(); err != nil {
		d.reject("clear", c.Size(), err)
	}
	log.Debug().Bool("empty", c.Empty()).Msg("after clear")
	d.printf("\n")
}
