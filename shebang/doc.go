// Package shebang extracts interpreter specifications from script first
// lines.
//
// A shebang names an interpreter directly (#!/usr/bin/bash) or through env
// (#!/usr/bin/env python3). The env form is emulated, never spawned: the
// token after env becomes the interpreter, and env's -S flag is honored so
// multi-argument interpreters work (#!/usr/bin/env -S python3 -u -O yields
// interpreter python3 with argv [-u -O]). No other env flags are
// recognized; they pass through verbatim as the interpreter token, which is
// a documented limitation rather than an error.
package shebang
