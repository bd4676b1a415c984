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

package debugger

import (
	"os"

	"github.com/Yaswanth2747/miniGPU/curated"

	"github.com/bradleyjkemp/memviz"
)

// writeViz renders the live machine structure as a graphviz dot file. The
// output is a snapshot of the pointer graph rooted at the GPU container;
// render it with something like: dot -Tsvg minigpu.dot.
func (dbg *Debugger) writeViz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("VIZ: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.gpu)

	return nil
}
