package contract

import "okinoko_governance/sdk"

const (
	// kDAOMeta stores encoded DAO registry entries.
	kDAOMeta byte = 0x01
	// kDAOSettings stores the governance settings next to the meta.
	kDAOSettings byte = 0x02
	// kDAOTreasury tracks the native-value balance per dao.
	kDAOTreasury byte = 0x03
	// kDAOMember houses encoded Member structs (dao scoped).
	kDAOMember byte = 0x04
	// kProposalCounter holds the next proposal id of a dao as decimal text.
	kProposalCounter byte = 0x05
	// kProposalMeta contains encoded Proposal records (dao + proposal id).
	kProposalMeta byte = 0x10
	// kVoteReceipt stores one immutable vote per dao, proposal and voter.
	kVoteReceipt byte = 0x20
)

// daoCounterKey holds the next dao id as decimal text.
var daoCounterKey = []byte("count:dao")

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// daoScopedKey is prefix + dao id, shared by every one-per-dao record.
func daoScopedKey(prefix byte, daoID uint64) []byte {
	buf := make([]byte, 9)
	buf[0] = prefix
	packU64LEInline(daoID, buf[1:])
	return buf
}

func daoKey(id uint64) []byte             { return daoScopedKey(kDAOMeta, id) }
func settingsKey(id uint64) []byte        { return daoScopedKey(kDAOSettings, id) }
func treasuryKey(id uint64) []byte        { return daoScopedKey(kDAOTreasury, id) }
func proposalCounterKey(id uint64) []byte { return daoScopedKey(kProposalCounter, id) }

// memberKey mixes dao id plus address bytes to avoid nested maps in storage.
func memberKey(daoID uint64, addr sdk.Address) []byte {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kDAOMember)
	buf = packU64LE(daoID, buf)
	buf = append(buf, addrStr...)
	return buf
}

// proposalKey keeps every proposal of a dao contiguous under 0x10.
func proposalKey(daoID, proposalID uint64) []byte {
	buf := make([]byte, 17)
	buf[0] = kProposalMeta
	packU64LEInline(daoID, buf[1:])
	packU64LEInline(proposalID, buf[9:])
	return buf
}

// voteKey generates a unique storage key for a vote
// based on the dao, the proposal and the voter's address.
func voteKey(daoID, proposalID uint64, voter sdk.Address) []byte {
	addr := voter.String()
	buf := make([]byte, 0, 1+8+8+len(addr))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(daoID, buf)
	buf = packU64LE(proposalID, buf)
	buf = append(buf, addr...)
	return buf
}
