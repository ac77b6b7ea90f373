// Package browser is a read-only interactive terminal viewer over a
// decoded instruction stream: a scrollable listing, a structured operand
// detail pane, and a status line. It never executes anything and holds
// no decoder state beyond the records it was given.
package browser

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/riscv-disasm/config"
	"github.com/lookbusy1344/riscv-disasm/riscv"
)

// Browser holds the tview application and panels for one disassembly
// session.
type Browser struct {
	App    *tview.Application
	Result riscv.StreamResult

	// Layout containers
	MainLayout *tview.Flex

	// View panels
	ListView   *tview.TextView
	DetailView *tview.TextView
	StatusView *tview.TextView

	// State
	Profile  *riscv.Profile
	Config   *config.Config
	Selected int
}

// New creates a browser over an already-decoded stream result.
func New(profile *riscv.Profile, cfg *config.Config, result riscv.StreamResult) *Browser {
	if cfg == nil {
		cfg = config.Default()
	}
	b := &Browser{
		App:     tview.NewApplication(),
		Result:  result,
		Profile: profile,
		Config:  cfg,
	}

	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	b.refreshAll()

	return b
}

// Run decodes nothing itself; it displays the given result until the
// user quits.
func Run(profile *riscv.Profile, cfg *config.Config, result riscv.StreamResult) error {
	b := New(profile, cfg, result)
	return b.App.SetRoot(b.MainLayout, true).Run()
}

// initializeViews creates all the view panels
func (b *Browser) initializeViews() {
	b.ListView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ListView.SetBorder(true).SetTitle(" Disassembly ")

	b.DetailView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.DetailView.SetBorder(true).SetTitle(" Operands ")

	b.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	b.StatusView.SetBorder(true).SetTitle(" Status ")
}

// buildLayout constructs the browser layout
func (b *Browser) buildLayout() {
	content := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.ListView, 0, 2, true).
		AddItem(b.DetailView, 0, 1, false)

	b.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(content, 0, 1, true).
		AddItem(b.StatusView, 3, 0, false)
}

// setupKeyBindings sets up keyboard shortcuts
func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyDown:
			b.moveSelection(1)
			return nil
		case tcell.KeyUp:
			b.moveSelection(-1)
			return nil
		case tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		}

		switch event.Rune() {
		case 'j':
			b.moveSelection(1)
			return nil
		case 'k':
			b.moveSelection(-1)
			return nil
		case 'g':
			b.setSelection(0)
			return nil
		case 'G':
			b.setSelection(len(b.Result.Records) - 1)
			return nil
		case 'q':
			b.App.Stop()
			return nil
		}
		return event
	})
}

func (b *Browser) moveSelection(delta int) {
	b.setSelection(b.Selected + delta)
}

func (b *Browser) setSelection(index int) {
	if len(b.Result.Records) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(b.Result.Records) {
		index = len(b.Result.Records) - 1
	}
	b.Selected = index
	b.refreshAll()
}

func (b *Browser) refreshAll() {
	b.refreshList()
	b.refreshDetail()
	b.refreshStatus()
}

func (b *Browser) refreshList() {
	var sb strings.Builder
	for i, rec := range b.Result.Records {
		marker := "  "
		color := "[white]"
		if i == b.Selected {
			marker = "> "
			color = "[yellow]"
		}
		sb.WriteString(color)
		sb.WriteString(marker)
		sb.WriteString(ListLine(rec, b.Config.Display.ShowBytes))
		sb.WriteString("[-]\n")
	}
	b.ListView.SetText(sb.String())
	b.ListView.ScrollTo(b.scrollRow(), 0)
}

// scrollRow keeps the selection visible by anchoring the scroll a few
// lines above it.
func (b *Browser) scrollRow() int {
	row := b.Selected - 3
	if row < 0 {
		row = 0
	}
	return row
}

func (b *Browser) refreshDetail() {
	if len(b.Result.Records) == 0 {
		b.DetailView.SetText("no instructions decoded")
		return
	}
	rec := b.Result.Records[b.Selected]

	var sb strings.Builder
	fmt.Fprintf(&sb, "[yellow]%s %s[-]\n\n", rec.Mnemonic, rec.Operands)
	fmt.Fprintf(&sb, "address: 0x%x\n", rec.Address)
	fmt.Fprintf(&sb, "bytes:   %s\n", hex.EncodeToString(rec.Bytes))
	fmt.Fprintf(&sb, "size:    %d\n", rec.Size)
	fmt.Fprintf(&sb, "format:  %s\n\n", rec.Format)

	for i, op := range rec.Details {
		fmt.Fprintf(&sb, "operand %d: %s\n", i, DescribeOperand(op))
	}
	b.DetailView.SetText(sb.String())
}

func (b *Browser) refreshStatus() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "xlen=%d  records=%d", b.Profile.XLEN, len(b.Result.Records))
	if len(b.Result.Errors) > 0 {
		fmt.Fprintf(&sb, "  [red]errors=%d[-]", len(b.Result.Errors))
	}
	sb.WriteString("  (j/k move, g/G jump, q quit)")
	b.StatusView.SetText(sb.String())
}

// ListLine renders one record as a listing row: address, optional raw
// bytes, mnemonic and operands.
func ListLine(rec riscv.Record, showBytes bool) string {
	if showBytes {
		return fmt.Sprintf("%8x:  %-10s  %-12s %s", rec.Address, hex.EncodeToString(rec.Bytes), rec.Mnemonic, rec.Operands)
	}
	return fmt.Sprintf("%8x:  %-12s %s", rec.Address, rec.Mnemonic, rec.Operands)
}

// DescribeOperand renders one structured operand for the detail pane.
func DescribeOperand(op riscv.Operand) string {
	access := accessString(op.Access)
	switch op.Kind {
	case riscv.OperandRegister:
		return fmt.Sprintf("register %s (%s)", riscv.RegisterName(op.Reg), access)
	case riscv.OperandImmediate:
		return fmt.Sprintf("immediate %d", op.Imm)
	case riscv.OperandMemory:
		return fmt.Sprintf("memory base=%s disp=%d (%s)", riscv.RegisterName(op.Mem.Base), op.Mem.Displacement, access)
	}
	return "invalid"
}

func accessString(a riscv.Access) string {
	switch {
	case a.Read && a.Write:
		return "read/write"
	case a.Write:
		return "write"
	case a.Read:
		return "read"
	}
	return "none"
}
