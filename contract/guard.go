package contract

import (
	"okinoko_governance/contract/dao"
	"okinoko_governance/sdk"
	"okinoko_governance/store"
)

// The guard predicates always read the live transaction snapshot.

func daoExists(tx store.Txn, daoID uint64) (bool, error) {
	d, err := loadDAO(tx, daoID)
	return d != nil, err
}

func isDaoActive(tx store.Txn, daoID uint64) (bool, error) {
	d, err := loadDAO(tx, daoID)
	if err != nil || d == nil {
		return false, err
	}
	return d.Active, nil
}

func isActiveMember(tx store.Txn, daoID uint64, addr sdk.Address) (bool, error) {
	m, err := loadMember(tx, daoID, addr)
	if err != nil || m == nil {
		return false, err
	}
	return m.Active, nil
}

func isAdmin(tx store.Txn, daoID uint64, addr sdk.Address) (bool, error) {
	m, err := loadMember(tx, daoID, addr)
	if err != nil || m == nil {
		return false, err
	}
	return m.Active && m.Admin, nil
}

// requireActiveDAO loads the dao and fails NotFound or Inactive.
func requireActiveDAO(tx store.Txn, daoID uint64) (*dao.DAO, error) {
	d, err := loadDAO(tx, daoID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fail(KindNotFound, "dao %d", daoID)
	}
	if !d.Active {
		return nil, fail(KindInactive, "dao %d", daoID)
	}
	return d, nil
}

// requireAdmin fails Unauthorized unless caller is an active admin of the dao.
func requireAdmin(tx store.Txn, daoID uint64, caller sdk.Address) error {
	ok, err := isAdmin(tx, daoID, caller)
	if err != nil {
		return err
	}
	if !ok {
		return fail(KindUnauthorized, "%s is not an admin of dao %d", caller, daoID)
	}
	return nil
}
