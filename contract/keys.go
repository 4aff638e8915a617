package contract

import "snapgov/sdk"

// prefixAddrKey glues a prefix byte to the address bytes, the workhorse shape here.
func prefixAddrKey(prefix byte, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, prefix)
	buf = append(buf, addrStr...)
	return string(buf)
}

// prefixDigestKey binds a prefix byte to a 32-byte intent digest.
func prefixDigestKey(prefix byte, id Digest) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, prefix)
	buf = append(buf, id[:]...)
	return string(buf)
}

func configKey() string {
	return string([]byte{kConfig})
}

func balanceKey(addr sdk.Address) string {
	return prefixAddrKey(kBalance, addr)
}

func supplyKey() string {
	return string([]byte{kSupply})
}

func delegationKey(addr sdk.Address) string {
	return prefixAddrKey(kDelegation, addr)
}

func powerCheckpointsKey(addr sdk.Address) string {
	return prefixAddrKey(kPowerCheckpoints, addr)
}

func supplyCheckpointsKey() string {
	return string([]byte{kSupplyCheckpoints})
}

func proposalKey(id Digest) string {
	return prefixDigestKey(kProposal, id)
}

func executedKey(id Digest) string {
	return prefixDigestKey(kExecuted, id)
}

// voteStanceKey latches who voted what. Key format: kVoteStance|digest|address
func voteStanceKey(id Digest, voter sdk.Address) string {
	addrStr := AddressToString(voter)
	buf := make([]byte, 0, 1+len(id)+len(addrStr))
	buf = append(buf, kVoteStance)
	buf = append(buf, id[:]...)
	buf = append(buf, addrStr...)
	return string(buf)
}

// receiptKey addresses one voter's receipt balance. Key: kReceipt|digest|stance|address
func receiptKey(id Digest, stance Stance, holder sdk.Address) string {
	addrStr := AddressToString(holder)
	buf := make([]byte, 0, 1+len(id)+1+len(addrStr))
	buf = append(buf, kReceipt)
	buf = append(buf, id[:]...)
	buf = append(buf, byte(stance))
	buf = append(buf, addrStr...)
	return string(buf)
}

func receiptSupplyKey(id Digest, stance Stance) string {
	buf := make([]byte, 0, 1+len(id)+1)
	buf = append(buf, kReceiptSupply)
	buf = append(buf, id[:]...)
	buf = append(buf, byte(stance))
	return string(buf)
}

func permitKey(id Digest) string {
	return prefixDigestKey(kPermit, id)
}

func mirrorKey(id Digest) string {
	return prefixDigestKey(kMirror, id)
}

func futarchyKey(id Digest) string {
	return prefixDigestKey(kFutarchy, id)
}

func memberSlotsKey() string {
	return string([]byte{kMemberSlots})
}

func memberIndexKey(addr sdk.Address) string {
	return prefixAddrKey(kMemberIndex, addr)
}

// allowanceKey scopes a claimable treasury grant to one (address, asset) pair.
func allowanceKey(addr sdk.Address, asset sdk.Asset) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(asset)+1+len(addrStr))
	buf = append(buf, kAllowance)
	buf = append(buf, string(asset)...)
	buf = append(buf, 0x00)
	buf = append(buf, addrStr...)
	return string(buf)
}

func chatCountKey() string {
	return string([]byte{kChatCount})
}
