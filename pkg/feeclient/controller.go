package feeclient

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FeeController owns the my-fees screen state: the loaded fee records,
// their payable/settled partition, the multi-select set and the single
// and combined payment flows. It is not safe for concurrent use; the
// goroutine driving the UI event loop must own it.
type FeeController struct {
	observable

	feeService     FeeService
	paymentService PaymentService
	checkout       Checkout

	studentID uint
	contact   Contact

	records    []FeeRecord
	summary    *FeeSummary
	selected   map[uint]bool
	selectMode bool

	loading bool
	paying  bool

	errMsg      string
	lastReceipt *Receipt
}

// NewFeeController creates a controller for one student's fee screen.
// The contact prefills the gateway checkout.
func NewFeeController(feeService FeeService, paymentService PaymentService, checkout Checkout, studentID uint, contact Contact) *FeeController {
	return &FeeController{
		feeService:     feeService,
		paymentService: paymentService,
		checkout:       checkout,
		studentID:      studentID,
		contact:        contact,
		selected:       make(map[uint]bool),
	}
}

// Load fetches the subject's fee records and summary, sorts the records
// most urgent first and reconciles the selection against the fresh
// payable set. On failure the previous records and selection stay as
// they were. Safe to call repeatedly.
func (c *FeeController) Load(ctx context.Context) error {
	c.loading = true
	c.errMsg = ""
	c.notify()

	myFees, err := c.feeService.GetMyFees(ctx, c.studentID)
	if err != nil {
		c.loading = false
		c.errMsg = userMessage(err)
		c.notify()
		return err
	}

	records := make([]FeeRecord, len(myFees.Records))
	copy(records, myFees.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Status.precedence() < records[j].Status.precedence()
	})

	c.records = records
	if myFees.Summary != nil {
		c.summary = myFees.Summary
	} else {
		c.summary = foldSummary(records)
	}

	c.pruneSelection()

	c.loading = false
	c.notify()

	return nil
}

// pruneSelection drops selected ids whose record vanished or left the
// payable set. An emptied selection exits select mode.
func (c *FeeController) pruneSelection() {
	payable := make(map[uint]bool)
	for _, record := range c.records {
		if record.Status.IsPayable() {
			payable[record.ID] = true
		}
	}

	for id := range c.selected {
		if !payable[id] {
			delete(c.selected, id)
		}
	}
	if len(c.selected) == 0 {
		c.selectMode = false
	}
}

// foldSummary derives the totals locally when the server sends no summary
func foldSummary(records []FeeRecord) *FeeSummary {
	summary := &FeeSummary{}
	for _, record := range records {
		summary.TotalPaid += record.PaidAmount
		switch {
		case record.Status == StatusOverdue:
			summary.TotalDue += record.Balance
			summary.TotalOverdue += record.Balance
			summary.OverdueCount++
		case record.Status.IsPayable():
			summary.TotalDue += record.Balance
			summary.PendingCount++
		case record.Status.IsSettled():
			summary.PaidCount++
		}
	}
	return summary
}

// Records returns all loaded records in display order
func (c *FeeController) Records() []FeeRecord {
	return c.records
}

// Summary returns the current totals, server-provided or locally folded
func (c *FeeController) Summary() *FeeSummary {
	return c.summary
}

// PayableRecords returns the records still open for payment, in display order
func (c *FeeController) PayableRecords() []FeeRecord {
	var out []FeeRecord
	for _, record := range c.records {
		if record.Status.IsPayable() {
			out = append(out, record)
		}
	}
	return out
}

// SettledRecords returns the closed records, in display order
func (c *FeeController) SettledRecords() []FeeRecord {
	var out []FeeRecord
	for _, record := range c.records {
		if record.Status.IsSettled() {
			out = append(out, record)
		}
	}
	return out
}

// SelectedTotal returns the combined balance of the selected records,
// zero when nothing is selected
func (c *FeeController) SelectedTotal() float64 {
	var total float64
	for _, record := range c.records {
		if c.selected[record.ID] {
			total += record.Balance
		}
	}
	return total
}

// IsSelected reports whether the record is in the selection
func (c *FeeController) IsSelected(id uint) bool {
	return c.selected[id]
}

// SelectedCount returns the number of selected records
func (c *FeeController) SelectedCount() int {
	return len(c.selected)
}

// SelectMode reports whether multi-select is active
func (c *FeeController) SelectMode() bool {
	return c.selectMode
}

// Loading reports whether a load is in flight
func (c *FeeController) Loading() bool {
	return c.loading
}

// Paying reports whether a payment flow is in flight
func (c *FeeController) Paying() bool {
	return c.paying
}

// ErrorMessage returns the last surfaced error, empty when the last
// operation succeeded
func (c *FeeController) ErrorMessage() string {
	return c.errMsg
}

// LastReceipt returns the receipt of the last verified single payment
func (c *FeeController) LastReceipt() *Receipt {
	return c.lastReceipt
}

// ToggleSelect adds the record to the selection or removes it. Ids that
// are not currently payable are ignored. Select mode tracks whether the
// selection is non-empty.
func (c *FeeController) ToggleSelect(id uint) {
	if c.selected[id] {
		delete(c.selected, id)
	} else {
		if !c.isPayableID(id) {
			return
		}
		c.selected[id] = true
	}

	c.selectMode = len(c.selected) > 0
	c.notify()
}

func (c *FeeController) isPayableID(id uint) bool {
	for _, record := range c.records {
		if record.ID == id {
			return record.Status.IsPayable()
		}
	}
	return false
}

// SelectAllPayable toggles between selecting every payable record and
// clearing the selection: when the payable set is already fully
// selected the whole selection is cleared and select mode exits,
// otherwise the payable ids are unioned in and select mode enters.
func (c *FeeController) SelectAllPayable() {
	payable := c.PayableRecords()

	allSelected := true
	for _, record := range payable {
		if !c.selected[record.ID] {
			allSelected = false
			break
		}
	}

	if allSelected {
		c.selected = make(map[uint]bool)
		c.selectMode = false
	} else {
		for _, record := range payable {
			c.selected[record.ID] = true
		}
		c.selectMode = len(c.selected) > 0
	}

	c.notify()
}

// PaySingle runs the full payment flow for one record: create an order
// for its exact balance, open the gateway checkout, verify the result,
// keep the receipt and reload. A failing or cancelled step aborts the
// flow with the record and selection untouched and the error message
// surfaced.
func (c *FeeController) PaySingle(ctx context.Context, id uint) error {
	if c.paying {
		return ErrPaymentInFlight
	}

	var record *FeeRecord
	for i := range c.records {
		if c.records[i].ID == id {
			record = &c.records[i]
			break
		}
	}
	if record == nil || !record.Status.IsPayable() {
		return fmt.Errorf("fee record %d is not payable", id)
	}

	c.paying = true
	c.errMsg = ""
	c.notify()

	receipt, err := c.paySingleFlow(ctx, record)
	if err != nil {
		c.paying = false
		c.errMsg = userMessage(err)
		c.notify()
		return err
	}

	c.lastReceipt = receipt
	c.paying = false
	c.notify()

	return c.Load(ctx)
}

func (c *FeeController) paySingleFlow(ctx context.Context, record *FeeRecord) (*Receipt, error) {
	order, err := c.paymentService.CreateOrder(ctx, c.studentID, record.ID)
	if err != nil {
		return nil, err
	}

	result, err := c.checkout.Open(ctx, CheckoutOptions{
		OrderID:    order.OrderID,
		Amount:     order.Amount,
		GatewayKey: order.GatewayKey,
		Title:      record.Title,
		Contact:    c.contact,
	})
	if err != nil {
		return nil, err
	}

	receipt, err := c.paymentService.VerifyPayment(ctx, c.studentID, record.ID, result.OrderID, result.PaymentID, result.Signature)
	if err != nil {
		return nil, err
	}

	// some verifications omit the settled amount; fall back to the
	// balance the order was created for
	if receipt.AmountPaid == 0 {
		receipt.AmountPaid = record.Balance
	}

	return receipt, nil
}

// PayMulti pays the current selection through one combined order,
// optionally capped at customAmount for a partial payment split across
// the group. Success clears the selection, exits select mode and
// reloads once; failure leaves the selection intact and surfaces the
// error.
func (c *FeeController) PayMulti(ctx context.Context, customAmount *float64) error {
	if c.paying {
		return ErrPaymentInFlight
	}
	if len(c.selected) == 0 {
		return fmt.Errorf("no fee records selected")
	}

	ids := c.selectedIDs()

	c.paying = true
	c.errMsg = ""
	c.notify()

	if err := c.payMultiFlow(ctx, ids, customAmount); err != nil {
		c.paying = false
		c.errMsg = userMessage(err)
		c.notify()
		return err
	}

	c.selected = make(map[uint]bool)
	c.selectMode = false
	c.paying = false
	c.notify()

	return c.Load(ctx)
}

// selectedIDs returns the selected ids in display order
func (c *FeeController) selectedIDs() []uint {
	ids := make([]uint, 0, len(c.selected))
	for _, record := range c.records {
		if c.selected[record.ID] {
			ids = append(ids, record.ID)
		}
	}
	return ids
}

func (c *FeeController) payMultiFlow(ctx context.Context, ids []uint, customAmount *float64) error {
	order, err := c.paymentService.CreateMultiOrder(ctx, c.studentID, ids, customAmount)
	if err != nil {
		return err
	}

	result, err := c.checkout.Open(ctx, CheckoutOptions{
		OrderID:    order.OrderID,
		Amount:     order.Amount,
		GatewayKey: order.GatewayKey,
		Title:      fmt.Sprintf("Payment for %d fees", len(ids)),
		Contact:    c.contact,
	})
	if err != nil {
		return err
	}

	return c.paymentService.VerifyMultiPayment(ctx, c.studentID, result.OrderID, result.PaymentID, result.Signature)
}

// QuickPickAmounts returns 25, 50, 75 and 100 percent of the selected
// total, each rounded to the nearest whole currency unit
func (c *FeeController) QuickPickAmounts() []float64 {
	total := c.SelectedTotal()
	fractions := []float64{0.25, 0.5, 0.75, 1}

	amounts := make([]float64, len(fractions))
	for i, fraction := range fractions {
		amounts[i] = math.Round(total * fraction)
	}
	return amounts
}

// ParseCustomAmount parses user input for the custom-amount flow. Zero,
// negative or non-numeric input is rejected.
func ParseCustomAmount(input string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

// SubmitCustomAmount runs PayMulti capped at the entered amount.
// Invalid input submits nothing.
func (c *FeeController) SubmitCustomAmount(ctx context.Context, input string) error {
	amount, ok := ParseCustomAmount(input)
	if !ok {
		return nil
	}
	return c.PayMulti(ctx, &amount)
}
