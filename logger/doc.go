// This file is part of Gopher6510.
//
// Gopher6510 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6510 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6510.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log repository for gopher6510. Log entries
// are made with the Log() and Logf() functions and are tagged to indicate the
// part of the emulation making the entry (eg. "cpu", "monitor").
//
// Repeated entries are compressed into a single entry with a repeat count.
// The number of entries kept is bounded; older entries are discarded.
//
// Additional, isolated loggers can be created with NewLogger(). This is
// mainly useful for testing.
package logger
