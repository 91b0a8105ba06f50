// Command mos6510 is a thin front-end over the mos6510 core and asm
// packages: assemble source to an object-code file, disassemble a raw
// memory image, or run one for a fixed number of steps with a register
// trace. None of this is part of the tested core contract (see
// asm/assembler.go and mos6510/cpu.go) — it exists so the core is
// reachable end to end, mirroring the pack's z80opt command layout.
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dkowalski/mos6510/asm"
	"github.com/dkowalski/mos6510/mos6510"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mos6510",
		Short: "mos6510 assembler and emulator front-end",
	}
	root.AddCommand(newAsmCmd(), newDisasmCmd(), newRunCmd())
	return root
}

func newAsmCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "asm <in.s>",
		Short: "Assemble a source file to an object-code file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			a := asm.NewAssembler(nil)
			obj, err := a.Assemble(string(src))
			if err != nil {
				return errors.Wrap(err, "assemble")
			}

			if outPath == "" {
				outPath = args[0] + ".bin"
			}
			if err := writeObjectFile(outPath, obj); err != nil {
				return err
			}
			fmt.Printf("wrote %d bytes at origin %#04x to %s\n", len(obj.Bytes), obj.Origin, outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output object-code path (default: <in>.bin)")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	var origin uint16

	cmd := &cobra.Command{
		Use:   "disasm <in.bin>",
		Short: "Disassemble a raw memory image loaded at an origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			mem := mos6510.NewMemory()
			mem.LoadAt(origin, data)
			end := int(origin) + len(data)
			for addr := int(origin); addr < end; {
				text, size := mem.Disassemble(uint16(addr))
				fmt.Printf("%04X  %s\n", addr, text)
				addr += size
			}
			return nil
		},
	}
	cmd.Flags().Uint16Var(&origin, "origin", 0x0600, "load address of the image")
	return cmd
}

func newRunCmd() *cobra.Command {
	var origin uint16
	var steps int
	var trace bool

	cmd := &cobra.Command{
		Use:   "run <in.bin>",
		Short: "Load a raw image, reset to the origin, and execute N steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}

			mem := mos6510.NewMemory()
			mem.LoadAt(origin, data)
			mem.WriteWord(0xFFFC, origin)

			cpu := mos6510.NewCPU(mem)
			if trace {
				cpu.SetLogger(newStdoutLogger())
			}
			cpu.RequestReset()
			cpu.Step(nil)

			for i := 0; i < steps; i++ {
				if cpu.Step(nil) == 0 {
					if err := cpu.HaltError(); err != nil {
						return err
					}
					break
				}
			}

			fmt.Printf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X cycles:%d\n",
				cpu.PC, cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.Flags.Pack(false), cpu.CycleCount)
			return nil
		},
	}
	cmd.Flags().Uint16Var(&origin, "origin", 0x0600, "load address and reset vector target")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of instructions to execute")
	cmd.Flags().BoolVar(&trace, "trace", false, "print one line per executed instruction")
	return cmd
}

func writeObjectFile(path string, obj *asm.ObjectCode) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	var header [2]byte
	binary.LittleEndian.PutUint16(header[:], obj.Origin)
	if _, err := f.Write(header[:]); err != nil {
		return errors.Wrap(err, "writing origin header")
	}
	if _, err := f.Write(obj.Bytes); err != nil {
		return errors.Wrap(err, "writing object bytes")
	}
	return nil
}
