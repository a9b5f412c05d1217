// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerminer/ledger"
)

func TestComputeUnitLimit(t *testing.T) {
	ix := ledger.ComputeUnitLimit(0x01020304)

	assert.Equal(t, ledger.ComputeBudgetProgram, ix.Program, "program")
	assert.Equal(t, "ComputeBudget111111111111111111111111111111", ix.Program.String(), "program text")
	assert.Equal(t, 0, len(ix.Accounts), "no accounts")
	assert.Equal(t, []byte{2, 0x04, 0x03, 0x02, 0x01}, ix.Data, "data")
}

func TestTransfer(t *testing.T) {
	from := filled(1)
	to := filled(2)
	ix := ledger.Transfer(from, to, 0x0102)

	assert.Equal(t, ledger.SystemProgram, ix.Program, "program")
	assert.Equal(t, "11111111111111111111111111111111", ix.Program.String(), "program text")
	assert.Equal(t, []ledger.AccountMeta{
		{Key: from, Signer: true, Writable: true},
		{Key: to, Writable: true},
	}, ix.Accounts, "accounts")
	assert.Equal(t, []byte{2, 0, 0, 0, 0x02, 0x01, 0, 0, 0, 0, 0, 0}, ix.Data, "data")
}

func TestFinality(t *testing.T) {
	tests := []struct {
		text    string
		level   ledger.Finality
		settled bool
	}{
		{"", ledger.Unknown, false},
		{"processed", ledger.Processed, false},
		{"confirmed", ledger.Confirmed, true},
		{"finalized", ledger.Finalized, true},
	}
	for _, item := range tests {
		f, err := ledger.ParseFinality(item.text)
		assert.Nil(t, err, "parse: %q", item.text)
		assert.Equal(t, item.level, f, "level: %q", item.text)
		assert.Equal(t, item.settled, f.IsSettled(), "settled: %q", item.text)
	}

	_, err := ledger.ParseFinality("rooted")
	assert.NotNil(t, err, "unknown level")
}

func TestKeyText(t *testing.T) {
	key := filled(7)
	back, err := ledger.ParsePublicKey(key.String())
	assert.Nil(t, err, "parse")
	assert.Equal(t, key, back, "round trip")

	_, err = ledger.ParsePublicKey("")
	assert.NotNil(t, err, "empty")

	_, err = ledger.ParsePublicKey("2")
	assert.NotNil(t, err, "short")

	var sig ledger.Signature
	sig[63] = 1
	s, err := ledger.ParseSignature(sig.String())
	assert.Nil(t, err, "signature parse")
	assert.Equal(t, sig, s, "signature round trip")
}
