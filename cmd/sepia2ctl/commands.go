package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sepiawrapper/sepia2-go/internal/controlsvc/pb"
)

var errUsage = errors.New("usage")

// command is one parsed sepia2ctl invocation or shell line.
type command struct {
	name      string
	laser     int
	all       bool
	rateMHz   float64
	intensity float64
	delayNs   float64
}

const usage = `commands:
  list                                   list connected mainframes
  status [laser]                         show oscillator and laser status
  start <laser> <MHz> <percent> [ns]     start a laser with the oscillator
  stop                                   disable all oscillator outputs
  clock <MHz>                            set the internal oscillator clock
  intensity <laser> <percent>            set a laser intensity
  lock | unlock                          set or clear the soft lock
  shell                                  interactive session
`

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}
	cmd := command{name: strings.ToLower(args[0])}
	args = args[1:]

	want := func(lo, hi int) error {
		if len(args) < lo || len(args) > hi {
			return fmt.Errorf("%s: %w", cmd.name, errUsage)
		}
		return nil
	}

	var err error
	switch cmd.name {
	case "list", "stop", "lock", "unlock", "shell", "help":
		err = want(0, 0)
	case "status":
		cmd.all = len(args) == 0
		if err = want(0, 1); err == nil && !cmd.all {
			cmd.laser, err = parseInt("laser", args[0])
		}
	case "start":
		if err = want(3, 4); err != nil {
			break
		}
		if cmd.laser, err = parseInt("laser", args[0]); err != nil {
			break
		}
		if cmd.rateMHz, err = parseFloat("rate", args[1]); err != nil {
			break
		}
		if cmd.intensity, err = parseFloat("intensity", args[2]); err != nil {
			break
		}
		if len(args) == 4 {
			cmd.delayNs, err = parseFloat("delay", args[3])
		}
	case "clock":
		if err = want(1, 1); err == nil {
			cmd.rateMHz, err = parseFloat("frequency", args[0])
		}
	case "intensity":
		if err = want(2, 2); err != nil {
			break
		}
		if cmd.laser, err = parseInt("laser", args[0]); err != nil {
			break
		}
		cmd.intensity, err = parseFloat("intensity", args[1])
	default:
		err = fmt.Errorf("unknown command %q: %w", cmd.name, errUsage)
	}
	if err != nil {
		return command{}, err
	}
	return cmd, nil
}

func parseInt(what, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: not an integer", what, s)
	}
	return v, nil
}

func parseFloat(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: not a number", what, s)
	}
	return v, nil
}

// execute runs cmd against an open session. list, shell and help are handled
// by the caller.
func execute(ctx context.Context, ctrl pb.ControlClient, open *pb.OpenResponse, cmd command, w io.Writer) error {
	id := open.GetSessionId()
	switch cmd.name {
	case "status":
		return printStatus(ctx, ctrl, open, cmd, w)
	case "start":
		resp, err := ctrl.StartLaserSimple(ctx, &pb.StartLaserRequest{
			SessionId: id, Laser: int32(cmd.laser), RateMhz: cmd.rateMHz, Intensity: cmd.intensity, DelayNs: cmd.delayNs,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "laser %d running at %.3f MHz, delay %.3f ns\n", cmd.laser, resp.GetFrequencyMhz(), resp.GetDelayNs())
	case "stop":
		if _, err := ctrl.StopLasers(ctx, &pb.SessionRequest{SessionId: id}); err != nil {
			return err
		}
		fmt.Fprintln(w, "lasers stopped")
	case "clock":
		resp, err := ctrl.SetClock(ctx, &pb.SetClockRequest{SessionId: id, FrequencyMhz: cmd.rateMHz})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "oscillator at %.3f MHz\n", resp.GetFrequencyMhz())
	case "intensity":
		req := &pb.SetIntensityRequest{SessionId: id, Laser: int32(cmd.laser), Intensity: cmd.intensity}
		if _, err := ctrl.SetIntensity(ctx, req); err != nil {
			return err
		}
		fmt.Fprintf(w, "laser %d intensity %.1f %%\n", cmd.laser, cmd.intensity)
	case "lock", "unlock":
		set := ctrl.Lock
		if cmd.name == "unlock" {
			set = ctrl.Unlock
		}
		resp, err := set(ctx, &pb.SessionRequest{SessionId: id})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "locked=%t soft_locked=%t\n", resp.GetLocked(), resp.GetSoftLocked())
	default:
		return fmt.Errorf("%s: %w", cmd.name, errUsage)
	}
	return nil
}

func printStatus(ctx context.Context, ctrl pb.ControlClient, open *pb.OpenResponse, cmd command, w io.Writer) error {
	id := open.GetSessionId()
	lasers := open.GetLasers()
	if !cmd.all && (cmd.laser < 0 || cmd.laser >= len(lasers)) {
		return fmt.Errorf("laser %d: no such laser", cmd.laser)
	}
	if cmd.all {
		fmt.Fprintf(w, "%s  serial %s  firmware %s\n", open.GetModel(), open.GetSerial(), open.GetFirmware())
		if open.GetOscillator() != nil {
			st, err := ctrl.GetOscillatorStatus(ctx, &pb.SessionRequest{SessionId: id})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-5s slot %03d  %s  divider %d  %.3f MHz  outputs %v  sync %v\n",
				st.GetType(), st.GetSlotId(), st.GetTriggerMode(), st.GetDivider(), st.GetClockFrequencyMhz(),
				st.GetOutputEnabled(), st.GetSyncEnabled())
			for ch, c := range st.GetChannels() {
				if c.GetDelayed() {
					fmt.Fprintf(w, "      ch %d  delay %.3f ns  fine %d\n", ch, c.GetDelayNs(), c.GetAmplitudeAu())
				} else {
					fmt.Fprintf(w, "      ch %d  combines %v\n", ch, c.GetCombines())
				}
			}
		}
		for _, u := range open.GetUnsupported() {
			fmt.Fprintf(w, "%-5s slot %03d  unsupported\n", u.GetType(), u.GetSlot())
		}
	}
	for i := range lasers {
		if !cmd.all && i != cmd.laser {
			continue
		}
		st, err := ctrl.GetLaserStatus(ctx, &pb.LaserRequest{SessionId: id, Laser: int32(i)})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "laser %d  %-4s slot %03d  %s  %s  pulsed %t  %.1f %%",
			i, st.GetType(), st.GetSlotId(), st.GetHeadType(), st.GetTriggerMode(), st.GetPulsed(), st.GetIntensity())
		if st.GetWavelengthNm() != 0 {
			fmt.Fprintf(w, "  %d nm  %s  %.3f MHz", st.GetWavelengthNm(), st.GetOperationMode(), st.GetOperationFrequencyMhz())
			fmt.Fprintf(w, "  trigger %d mV  gate %d ns x%d enabled=%t",
				st.GetTriggerLevelMv(), st.GetGatingOnTimeNs(), st.GetGatingOffTimeFactor(), st.GetGatingEnabled())
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printDevices(ctx context.Context, ctrl pb.ControlClient, w io.Writer) error {
	resp, err := ctrl.ListDevices(ctx, &pb.ListDevicesRequest{})
	if err != nil {
		return err
	}
	if len(resp.GetDevices()) == 0 {
		fmt.Fprintln(w, "no devices found")
	}
	for _, d := range resp.GetDevices() {
		fmt.Fprintf(w, "%d  %s  %s\n", d.GetIndex(), d.GetModel(), d.GetSerial())
	}
	return nil
}
