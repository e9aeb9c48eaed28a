package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/ctyconv"
	"github.com/vk/hclimport/internal/unit"
	"github.com/zclconf/go-cty/cty"
)

// BodyLoader executes HCL unit bodies.
type BodyLoader struct {
	imp Importer
	out io.Writer
}

// NewBodyLoader creates a loader that routes import blocks through imp and
// print blocks to out.
func NewBodyLoader(imp Importer, out io.Writer) *BodyLoader {
	return &BodyLoader{imp: imp, out: out}
}

// statement is one top-level attribute or block of a unit body.
type statement struct {
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func (s statement) start() int {
	if s.attr != nil {
		return s.attr.SrcRange.Start.Byte
	}
	return s.block.TypeRange.Start.Byte
}

// Exec parses the handle's origin and runs its statements in source order.
func (l *BodyLoader) Exec(ctx context.Context, h *unit.Handle) error {
	logger := ctxlog.FromContext(ctx).With("unit", h.Name().String())

	origin, ok := h.Origin()
	if !ok {
		return fmt.Errorf("unit %s has no origin to execute", h.Name())
	}
	src, err := os.ReadFile(origin)
	if err != nil {
		return fmt.Errorf("failed to read unit body: %w", err)
	}

	file, diags := hclsyntax.ParseConfig(src, origin, hcl.InitialPos)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse %s: %w", origin, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return fmt.Errorf("unexpected body type %T in %s", file.Body, origin)
	}

	stmts := statements(body)
	logger.Debug("Executing unit body.", "origin", origin, "statements", len(stmts))

	for _, st := range stmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if st.attr != nil {
			if err := l.assign(h, st.attr); err != nil {
				return err
			}
			continue
		}
		if err := l.runBlock(ctx, h, st.block); err != nil {
			return err
		}
	}

	logger.Debug("Unit body executed.", "attributes", h.Len())
	return nil
}

func statements(body *hclsyntax.Body) []statement {
	stmts := make([]statement, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		stmts = append(stmts, statement{attr: attr})
	}
	for _, block := range body.Blocks {
		stmts = append(stmts, statement{block: block})
	}
	sort.SliceStable(stmts, func(i, j int) bool {
		return stmts[i].start() < stmts[j].start()
	})
	return stmts
}

func (l *BodyLoader) assign(h *unit.Handle, attr *hclsyntax.Attribute) error {
	if attr.Name == SelfVar {
		return diagError(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Reserved name",
			Detail:   fmt.Sprintf("%q cannot be assigned in a unit body.", SelfVar),
			Subject:  &attr.NameRange,
		})
	}

	val, diags := attr.Expr.Value(evalContext(h))
	if diags.HasErrors() {
		return fmt.Errorf("failed to evaluate %q: %w", attr.Name, diags)
	}
	h.SetData(attr.Name, val)
	return nil
}

func (l *BodyLoader) runBlock(ctx context.Context, h *unit.Handle, block *hclsyntax.Block) error {
	switch block.Type {
	case "import":
		return l.runImport(ctx, h, block)
	case "print":
		return l.runPrint(h, block)
	default:
		return diagError(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported block type",
			Detail:   fmt.Sprintf("Blocks of type %q are not expected here.", block.Type),
			Subject:  &block.TypeRange,
		})
	}
}

var printSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "message", Required: true},
	},
}

func (l *BodyLoader) runPrint(h *unit.Handle, block *hclsyntax.Block) error {
	if len(block.Labels) != 0 {
		return diagError(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected label",
			Detail:   "print blocks take no labels.",
			Subject:  &block.LabelRanges[0],
		})
	}
	content, diags := block.Body.Content(printSchema)
	if diags.HasErrors() {
		return fmt.Errorf("invalid print block: %w", diags)
	}
	val, diags := content.Attributes["message"].Expr.Value(evalContext(h))
	if diags.HasErrors() {
		return fmt.Errorf("failed to evaluate print message: %w", diags)
	}

	line := ctyconv.HCLString(val)
	if val.IsKnown() && !val.IsNull() && val.Type() == cty.String {
		line = val.AsString()
	}
	_, err := fmt.Fprintln(l.out, line)
	return err
}

func diagError(d *hcl.Diagnostic) error {
	return hcl.Diagnostics{d}
}
