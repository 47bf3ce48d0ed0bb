package contract

import (
	"math"

	"github.com/samber/lo"

	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
	"okinoko_governance/store"
)

// Read-only accessors. Absence is reported as a nil record, the error is
// reserved for storage and decode failures.

func (c *Contract) FetchDAO(daoID uint64) (d *dao.DAO, err error) {
	err = c.view(func(tx store.Txn) error {
		d, err = loadDAO(tx, daoID)
		return err
	})
	return d, err
}

func (c *Contract) FetchSettings(daoID uint64) (s *dao.Settings, err error) {
	err = c.view(func(tx store.Txn) error {
		s, err = loadSettings(tx, daoID)
		return err
	})
	return s, err
}

func (c *Contract) FetchMember(daoID uint64, addr sdk.Address) (m *dao.Member, err error) {
	err = c.view(func(tx store.Txn) error {
		m, err = loadMember(tx, daoID, addr)
		return err
	})
	return m, err
}

func (c *Contract) FetchProposal(daoID, proposalID uint64) (p *dao.Proposal, err error) {
	err = c.view(func(tx store.Txn) error {
		p, err = loadProposal(tx, daoID, proposalID)
		return err
	})
	return p, err
}

func (c *Contract) FetchVote(daoID, proposalID uint64, voter sdk.Address) (v *dao.Vote, err error) {
	err = c.view(func(tx store.Txn) error {
		v, err = loadVote(tx, daoID, proposalID, voter)
		return err
	})
	return v, err
}

func (c *Contract) FetchTreasury(daoID uint64) (t *dao.Treasury, err error) {
	err = c.view(func(tx store.Txn) error {
		t, err = loadTreasury(tx, daoID)
		return err
	})
	return t, err
}

// FetchDAOCounter returns the id the next created dao will get.
func (c *Contract) FetchDAOCounter() (n uint64, err error) {
	err = c.view(func(tx store.Txn) error {
		n, err = daoCounter(tx)
		return err
	})
	return n, err
}

// ListProposalIDs returns every proposal id handed out for the dao in
// creation order. Unknown daos yield an empty list.
func (c *Contract) ListProposalIDs(daoID uint64) (ids []uint64, err error) {
	err = c.view(func(tx store.Txn) error {
		exists, err := daoExists(tx, daoID)
		if err != nil || !exists {
			return err
		}
		next, _, err := getCount(tx, proposalCounterKey(daoID))
		if err != nil {
			return err
		}
		if next > math.MaxInt {
			return fail(KindInvalidParams, "dao %d has too many proposals to list", daoID)
		}
		ids = lo.RangeFrom(uint64(0), int(next))
		return nil
	})
	return ids, err
}

// -----------------------------------------------------------------------------
// Guard queries
// -----------------------------------------------------------------------------

func (c *Contract) IsDAOActive(daoID uint64) (ok bool, err error) {
	err = c.view(func(tx store.Txn) error {
		ok, err = isDaoActive(tx, daoID)
		return err
	})
	return ok, err
}

func (c *Contract) IsActiveMember(daoID uint64, addr sdk.Address) (ok bool, err error) {
	err = c.view(func(tx store.Txn) error {
		ok, err = isActiveMember(tx, daoID, addr)
		return err
	})
	return ok, err
}

// IsAdmin is true for active members carrying the admin flag.
func (c *Contract) IsAdmin(daoID uint64, addr sdk.Address) (ok bool, err error) {
	err = c.view(func(tx store.Txn) error {
		ok, err = isAdmin(tx, daoID, addr)
		return err
	})
	return ok, err
}
