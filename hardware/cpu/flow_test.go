// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/test"
)

func TestBCC(t *testing.T) {
	// ADC #$F0; ADC #$1F; BCC +4; ADC #$1F; ADC #$1F; BRK
	var mc = newCPU()
	run(t, mc, 0x69, 0xf0, 0x69, 0x1f, 0x90, 0x04, 0x69, 0x1f, 0x69, 0x1f, 0x00)
	expectA(t, mc, 0x4d)
	expectStatus(t, mc, 0x00)

	// ADC #$F0; ADC #$01; BCC +4; ADC #$01; ADC #$01; BRK
	mc = newCPU()
	run(t, mc, 0x69, 0xf0, 0x69, 0x01, 0x90, 0x04, 0x69, 0x01, 0x69, 0x01, 0x00)
	expectA(t, mc, 0xf1)
	expectStatus(t, mc, 0x80)
}

func TestBCS(t *testing.T) {
	var mc = newCPU()
	run(t, mc, 0x69, 0xf0, 0x69, 0x1f, 0xb0, 0x04, 0x69, 0x1f, 0x69, 0x1f, 0x00)
	expectA(t, mc, 0x0f)
	expectStatus(t, mc, 0x41)

	mc = newCPU()
	run(t, mc, 0x69, 0xf0, 0x69, 0x01, 0xb0, 0x04, 0x69, 0x01, 0x69, 0x01, 0x00)
	expectA(t, mc, 0xf3)
	expectStatus(t, mc, 0x80)
}

func TestBEQ(t *testing.T) {
	// LDA #$00; BEQ +4; ADC #$01; ADC #$01; BRK
	var mc = newCPU()
	run(t, mc, 0xa9, 0x00, 0xf0, 0x04, 0x69, 0x01, 0x69, 0x01, 0x00)
	expectA(t, mc, 0x00)
	expectStatus(t, mc, 0x02)

	mc = newCPU()
	run(t, mc, 0xa9, 0x01, 0xf0, 0x04, 0x69, 0x01, 0x69, 0x01, 0x00)
	expectA(t, mc, 0x03)
	expectStatus(t, mc, 0x00)
}

func TestBNE(t *testing.T) {
	var mc = newCPU()
	run(t, mc, 0xa9, 0x01, 0xd0, 0x04, 0x69, 0x01, 0x69, 0x01, 0x00)
	expectA(t, mc, 0x01)
	expectStatus(t, mc, 0x00)

	mc = newCPU()
	run(t, mc, 0xa9, 0x00, 0xd0, 0x04, 0x69, 0x01, 0x69, 0x01, 0x00)
	expectA(t, mc, 0x02)
	expectStatus(t, mc, 0x00)

	// backwards branch. LDX #$05; DEX; BNE -3; BRK
	mc = newCPU()
	run(t, mc, 0xa2, 0x05, 0xca, 0xd0, 0xfd, 0x00)
	expectX(t, mc, 0x00)
	expectStatus(t, mc, 0x02)
	test.ExpectEquality(t, mc.Instructions, 12)
}

func TestBPL(t *testing.T) {
	// LDA #$F0; ADC #$01; BPL +4; ADC #$01; ADC #$01; BRK
	var mc = newCPU()
	run(t, mc, 0xa9, 0xf0, 0x69, 0x01, 0x10, 0x04, 0x69, 0x01, 0x69, 0x01, 0x00)
	expectA(t, mc, 0xf3)
	expectStatus(t, mc, 0x80)

	mc = newCPU()
	run(t, mc, 0xa9, 0x02, 0x69, 0x01, 0x10, 0x04, 0x69, 0x01, 0x69, 0x01, 0x00)
	expectA(t, mc, 0x03)
	expectStatus(t, mc, 0x00)
}

func TestBranchPageCrossing(t *testing.T) {
	mc := newCPU()

	// BNE +$10 at the end of a page
	mc.MemWriteU16(0xfffc, 0x80fb)
	mc.MemWrite(0x80fb, 0xd0)
	mc.MemWrite(0x80fc, 0x10)
	mc.Reset()

	halted, err := mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, halted)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x810d))
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	// BNE -$20 back across the page
	mc.MemWrite(0x810d, 0xd0)
	mc.MemWrite(0x810e, 0xe0)
	_, err = mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x80ef))
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// branch not taken
	mc.MemWrite(0x80ef, 0xf0)
	mc.MemWrite(0x80f0, 0x10)
	_, err = mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x80f1))
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
}

func TestFlags(t *testing.T) {
	var mc = newCPU()
	run(t, mc, 0x38, 0x00)
	expectStatus(t, mc, 0x01)

	mc = newCPU()
	run(t, mc, 0x38, 0x18, 0x00)
	expectStatus(t, mc, 0x00)

	// CLC and SEC only touch the carry flag
	mc = newCPU()
	run(t, mc, 0xa9, 0x80, 0x38, 0x00)
	expectStatus(t, mc, 0x81)

	mc = newCPU()
	run(t, mc, 0xa9, 0x80, 0x38, 0x18, 0x00)
	expectStatus(t, mc, 0x80)
}

func TestJSR(t *testing.T) {
	// LDA #$99; JSR $8006; BRK; ADC #$01; RTS
	var mc = newCPU()
	run(t, mc, 0xa9, 0x99, 0x20, 0x06, 0x80, 0x00, 0x69, 0x01, 0x60)
	expectA(t, mc, 0x9a)
	expectStatus(t, mc, 0x80)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))

	// LDA #$99; JSR $8008; ADC #$99; RTS; BRK
	mc = newCPU()
	run(t, mc, 0xa9, 0x99, 0x20, 0x08, 0x80, 0x69, 0x99, 0x60, 0x00)
	expectA(t, mc, 0x99)
	expectStatus(t, mc, 0x80)

	// the return address is pushed high byte first
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	expectMem(t, mc, 0x01ff, 0x80)
	expectMem(t, mc, 0x01fe, 0x04)
}

func TestJSRStepping(t *testing.T) {
	mc := newCPU()
	err := mc.Load([]uint8{0x20, 0x04, 0x80, 0x00, 0x60})
	test.DemandSuccess(t, err)
	mc.Reset()

	_, err = mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8004))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.MemReadU16(0x01fe), uint16(0x8002))
	test.ExpectEquality(t, mc.LastResult.InstructionData, uint16(0x8004))

	_, err = mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8003))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))

	halted, err := mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, halted)
	test.ExpectEquality(t, mc.LastResult.Defn.Mnemonic, "BRK")
}

func TestStackWraps(t *testing.T) {
	mc := newCPU()
	err := mc.Load([]uint8{0x20, 0x03, 0x80, 0x00})
	test.DemandSuccess(t, err)
	mc.Reset()
	mc.SP.Load(0x00)

	_, err = mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))
	expectMem(t, mc, 0x0100, 0x80)
	expectMem(t, mc, 0x01ff, 0x02)
}

func TestBRK(t *testing.T) {
	mc := newCPU()
	run(t, mc, 0x00)
	test.ExpectEquality(t, mc.Instructions, 1)
	test.ExpectEquality(t, mc.Cycles, 7)
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x8000))

	// an empty program runs into the zero bytes following it
	mc = newCPU()
	run(t, mc)
	test.ExpectEquality(t, mc.Instructions, 1)
}

func TestHookCalledBeforeEveryInstruction(t *testing.T) {
	mc := newCPU()

	var addresses []uint16
	hook := cpu.StepHookFunc(func(mc *cpu.CPU) cpu.StepResult {
		addresses = append(addresses, mc.PC.Address())
		return cpu.Continue
	})

	err := mc.Load([]uint8{0xa9, 0x01, 0xaa, 0x00})
	test.DemandSuccess(t, err)
	mc.Reset()
	test.DemandSuccess(t, mc.Run(hook))

	test.DemandEquality(t, len(addresses), 3)
	test.ExpectEquality(t, addresses[0], uint16(0x8000))
	test.ExpectEquality(t, addresses[1], uint16(0x8002))
	test.ExpectEquality(t, addresses[2], uint16(0x8003))
}
