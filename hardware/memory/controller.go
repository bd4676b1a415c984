// This file is part of miniGPU.
//
// miniGPU is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// miniGPU is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with miniGPU.  If not, see <https://www.gnu.org/licenses/>.

package memory

// ChannelState is the state of one arbitration channel in the controller.
type ChannelState int

// List of valid ChannelState values.
const (
	ChannelIdle ChannelState = iota
	ChannelProcessing
	ChannelWaiting
	ChannelCompletion
)

func (s ChannelState) String() string {
	switch s {
	case ChannelIdle:
		return "IDLE"
	case ChannelProcessing:
		return "PROCESSING"
	case ChannelWaiting:
		return "WAITING"
	case ChannelCompletion:
		return "COMPLETION"
	}
	return "unknown"
}

// channel is one arbitration lane. while a channel holds a claim on a
// consumer, the fields below the state field describe the claimed request.
type channel struct {
	state    ChannelState
	consumer int
	read     bool
	address  uint8
	data     uint8
}

// Controller arbitrates every consumer port onto the single memory port. A
// consumer is claimed by at most one channel at a time; the served bitmap
// enforces that.
//
// Priority is deterministic. Lower-numbered consumers win when more than one
// is requesting and lower-numbered channels claim first within a tick.
type Controller struct {
	ram      *RAM
	ports    []*Port
	channels []channel
	served   []bool
}

// NewController is the preferred method of initialisation for the Controller
// type. Consumer ports are attached afterwards with AddPort().
func NewController(ram *RAM, numChannels int) *Controller {
	return &Controller{
		ram:      ram,
		channels: make([]channel, numChannels),
		served:   make([]bool, 0),
	}
}

// AddPort attaches a consumer port to the controller, returning the consumer
// number. Attachment order decides arbitration priority.
func (mc *Controller) AddPort(p *Port) int {
	mc.ports = append(mc.ports, p)
	mc.served = append(mc.served, false)
	return len(mc.ports) - 1
}

// Reset returns every channel to idle, clears the served bitmap and drops
// the response side of every port. Any in-flight request is abandoned.
func (mc *Controller) Reset() {
	for k := range mc.channels {
		mc.channels[k] = channel{}
	}
	for j := range mc.served {
		mc.served[j] = false
	}
	for _, p := range mc.ports {
		p.Ready = false
		p.ReadData = 0
	}
}

// Step advances every channel by one tick. The request argument is the
// snapshot of the request side of every consumer port, taken at the start of
// the tick; the live ports are only ever written, never read.
//
// Channels are evaluated in ascending order. A channel claiming a consumer
// marks the served bitmap immediately, so a later channel in the same tick
// cannot claim the same consumer.
func (mc *Controller) Step(request []Port) {
	for k := range mc.channels {
		ch := &mc.channels[k]

		switch ch.state {
		case ChannelIdle:
			// linear scan for the lowest-numbered unserved consumer with a
			// pending request
			for j := range request {
				if mc.served[j] || !(request[j].ReadValid || request[j].WriteValid) {
					continue
				}
				mc.served[j] = true
				ch.consumer = j
				ch.read = request[j].ReadValid
				ch.address = request[j].Address
				ch.data = request[j].Data
				ch.state = ChannelProcessing
				break
			}

		case ChannelProcessing:
			// the memory port is always ready so the access completes on
			// this tick. answer the consumer
			if ch.read {
				mc.ports[ch.consumer].ReadData = mc.ram.Read(ch.address)
			} else {
				mc.ram.Write(ch.address, ch.data)
			}
			mc.ports[ch.consumer].Ready = true
			ch.state = ChannelWaiting

		case ChannelWaiting:
			// hold ready high until the consumer acknowledges by dropping
			// its valid signals
			if !request[ch.consumer].ReadValid && !request[ch.consumer].WriteValid {
				ch.state = ChannelCompletion
			}

		case ChannelCompletion:
			mc.ports[ch.consumer].Ready = false
			mc.served[ch.consumer] = false
			ch.state = ChannelIdle
		}
	}
}

// Snapshot returns a copy of every consumer port, in consumer order. The
// machine takes one snapshot at the start of each tick and passes it to both
// sides of the bus.
func (mc *Controller) Snapshot() []Port {
	s := make([]Port, len(mc.ports))
	for i := range mc.ports {
		s[i] = *mc.ports[i]
	}
	return s
}

// ServedBitmap returns a copy of the served bitmap. Entry j is true if some
// channel currently holds a claim on consumer j.
func (mc *Controller) ServedBitmap() []bool {
	b := make([]bool, len(mc.served))
	copy(b, mc.served)
	return b
}

// NumChannels returns the number of arbitration channels.
func (mc *Controller) NumChannels() int {
	return len(mc.channels)
}

// ChannelState returns the state of the specified channel.
func (mc *Controller) ChannelState(k int) ChannelState {
	return mc.channels[k].state
}

// ChannelConsumer returns the consumer currently claimed by the specified
// channel. The second return value is false if the channel is idle.
func (mc *Controller) ChannelConsumer(k int) (int, bool) {
	if mc.channels[k].state == ChannelIdle {
		return 0, false
	}
	return mc.channels[k].consumer, true
}
