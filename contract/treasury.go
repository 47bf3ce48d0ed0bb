package contract

import (
	"okinoko_governance/sdk"
)

// -----------------------------------------------------------------------------
// Treasury
// -----------------------------------------------------------------------------

// Deposit pulls amount from the caller through the native ledger and credits
// the dao treasury. Any member or outsider may fund a dao.
func (c *Contract) Deposit(daoID, amount uint64, caller sdk.Address, now uint64) error {
	return c.update("deposit", func(call *callCtx) error {
		if _, err := requireActiveDAO(call.tx, daoID); err != nil {
			return err
		}
		if amount == 0 {
			return fail(KindInvalidParams, "amount must be positive")
		}
		t, err := treasuryOrEmpty(call.tx, daoID)
		if err != nil {
			return err
		}
		balance := t.Balance + amount
		if balance < t.Balance {
			return fail(KindInvalidParams, "treasury balance overflows")
		}

		if err := c.ledger.Draw(caller, amount); err != nil {
			return &Error{Kind: KindTransferFailed, Msg: "draw from " + caller.String(), Err: err}
		}
		t.Balance = balance
		t.LastUpdated = now
		if err := saveTreasury(call.tx, t); err != nil {
			return err
		}
		emitFundsAdded(call, daoID, caller, amount)
		call.after(func() { c.metrics.moved("in", amount) })
		return nil
	})
}

// Withdraw pays amount out of the dao treasury to recipient. Admin only. The
// balance is only debited once the native transfer went through.
func (c *Contract) Withdraw(daoID uint64, recipient sdk.Address, amount uint64, caller sdk.Address, now uint64) error {
	return c.update("withdraw", func(call *callCtx) error {
		if _, err := requireActiveDAO(call.tx, daoID); err != nil {
			return err
		}
		if err := requireAdmin(call.tx, daoID, caller); err != nil {
			return err
		}
		if amount == 0 {
			return fail(KindInvalidParams, "amount must be positive")
		}
		if recipient.IsZero() {
			return fail(KindInvalidParams, "recipient is empty")
		}
		t, err := treasuryOrEmpty(call.tx, daoID)
		if err != nil {
			return err
		}
		if t.Balance < amount {
			return fail(KindInsufficientBalance, "treasury holds %d, requested %d", t.Balance, amount)
		}

		if err := c.ledger.Transfer(recipient, amount); err != nil {
			return &Error{Kind: KindTransferFailed, Msg: "transfer to " + recipient.String(), Err: err}
		}
		t.Balance -= amount
		t.LastUpdated = now
		if err := saveTreasury(call.tx, t); err != nil {
			return err
		}
		emitFundsRemoved(call, daoID, recipient, amount)
		call.after(func() { c.metrics.moved("out", amount) })
		return nil
	})
}
