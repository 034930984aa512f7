// cmd/ps2apu/keymap.go
package main

import evdev "github.com/holoplot/go-evdev"

// scanKey is the scan code set 2 identity of one physical key.
type scanKey struct {
	code     byte
	extended bool // preceded by 0xE0 on the wire
}

// scanKeyMap maps evdev key codes to set 2 scan codes, so a captured Linux
// keyboard produces the same wire traffic a PS/2 keyboard would. The Pause
// key is absent on purpose — it sends a fixed literal, handled separately.
var scanKeyMap = map[evdev.EvCode]scanKey{
	evdev.KEY_A: {code: 0x1C}, evdev.KEY_B: {code: 0x32},
	evdev.KEY_C: {code: 0x21}, evdev.KEY_D: {code: 0x23},
	evdev.KEY_E: {code: 0x24}, evdev.KEY_F: {code: 0x2B},
	evdev.KEY_G: {code: 0x34}, evdev.KEY_H: {code: 0x33},
	evdev.KEY_I: {code: 0x43}, evdev.KEY_J: {code: 0x3B},
	evdev.KEY_K: {code: 0x42}, evdev.KEY_L: {code: 0x4B},
	evdev.KEY_M: {code: 0x3A}, evdev.KEY_N: {code: 0x31},
	evdev.KEY_O: {code: 0x44}, evdev.KEY_P: {code: 0x4D},
	evdev.KEY_Q: {code: 0x15}, evdev.KEY_R: {code: 0x2D},
	evdev.KEY_S: {code: 0x1B}, evdev.KEY_T: {code: 0x2C},
	evdev.KEY_U: {code: 0x3C}, evdev.KEY_V: {code: 0x2A},
	evdev.KEY_W: {code: 0x1D}, evdev.KEY_X: {code: 0x22},
	evdev.KEY_Y: {code: 0x35}, evdev.KEY_Z: {code: 0x1A},

	evdev.KEY_1: {code: 0x16}, evdev.KEY_2: {code: 0x1E},
	evdev.KEY_3: {code: 0x26}, evdev.KEY_4: {code: 0x25},
	evdev.KEY_5: {code: 0x2E}, evdev.KEY_6: {code: 0x36},
	evdev.KEY_7: {code: 0x3D}, evdev.KEY_8: {code: 0x3E},
	evdev.KEY_9: {code: 0x46}, evdev.KEY_0: {code: 0x45},

	evdev.KEY_MINUS:      {code: 0x4E},
	evdev.KEY_EQUAL:      {code: 0x55},
	evdev.KEY_LEFTBRACE:  {code: 0x54},
	evdev.KEY_RIGHTBRACE: {code: 0x5B},
	evdev.KEY_SEMICOLON:  {code: 0x4C},
	evdev.KEY_APOSTROPHE: {code: 0x52},
	evdev.KEY_GRAVE:      {code: 0x0E},
	evdev.KEY_BACKSLASH:  {code: 0x5D},
	evdev.KEY_COMMA:      {code: 0x41},
	evdev.KEY_DOT:        {code: 0x49},
	evdev.KEY_SLASH:      {code: 0x4A},
	evdev.KEY_SPACE:      {code: 0x29},

	evdev.KEY_ENTER:     {code: 0x5A},
	evdev.KEY_TAB:       {code: 0x0D},
	evdev.KEY_BACKSPACE: {code: 0x66},
	evdev.KEY_ESC:       {code: 0x76},

	evdev.KEY_LEFTSHIFT:  {code: 0x12},
	evdev.KEY_RIGHTSHIFT: {code: 0x59},
	evdev.KEY_LEFTCTRL:   {code: 0x14},
	evdev.KEY_RIGHTCTRL:  {code: 0x14, extended: true},
	evdev.KEY_LEFTALT:    {code: 0x11},
	evdev.KEY_RIGHTALT:   {code: 0x11, extended: true},
	evdev.KEY_CAPSLOCK:   {code: 0x58},
	evdev.KEY_LEFTMETA:   {code: 0x1F, extended: true},
	evdev.KEY_RIGHTMETA:  {code: 0x27, extended: true},
	evdev.KEY_COMPOSE:    {code: 0x2F, extended: true}, // MENU

	evdev.KEY_F1:  {code: 0x05},
	evdev.KEY_F2:  {code: 0x06},
	evdev.KEY_F3:  {code: 0x04},
	evdev.KEY_F4:  {code: 0x0C},
	evdev.KEY_F5:  {code: 0x03},
	evdev.KEY_F6:  {code: 0x0B},
	evdev.KEY_F7:  {code: 0x83},
	evdev.KEY_F8:  {code: 0x0A},
	evdev.KEY_F9:  {code: 0x01},
	evdev.KEY_F10: {code: 0x09},
	evdev.KEY_F11: {code: 0x78},
	evdev.KEY_F12: {code: 0x07},

	evdev.KEY_NUMLOCK:    {code: 0x77},
	evdev.KEY_SCROLLLOCK: {code: 0x7E},

	evdev.KEY_UP:    {code: 0x75, extended: true},
	evdev.KEY_DOWN:  {code: 0x72, extended: true},
	evdev.KEY_RIGHT: {code: 0x74, extended: true},
	evdev.KEY_LEFT:  {code: 0x6B, extended: true},

	evdev.KEY_END:      {code: 0x69, extended: true},
	evdev.KEY_HOME:     {code: 0x6C, extended: true},
	evdev.KEY_INSERT:   {code: 0x70, extended: true},
	evdev.KEY_DELETE:   {code: 0x71, extended: true},
	evdev.KEY_PAGEDOWN: {code: 0x7A, extended: true},
	evdev.KEY_PAGEUP:   {code: 0x7D, extended: true},

	evdev.KEY_KP0:        {code: 0x70},
	evdev.KEY_KP1:        {code: 0x69},
	evdev.KEY_KP2:        {code: 0x72},
	evdev.KEY_KP3:        {code: 0x7A},
	evdev.KEY_KP4:        {code: 0x6B},
	evdev.KEY_KP5:        {code: 0x73},
	evdev.KEY_KP6:        {code: 0x74},
	evdev.KEY_KP7:        {code: 0x6C},
	evdev.KEY_KP8:        {code: 0x75},
	evdev.KEY_KP9:        {code: 0x7D},
	evdev.KEY_KPDOT:      {code: 0x71},
	evdev.KEY_KPASTERISK: {code: 0x7C},
	evdev.KEY_KPMINUS:    {code: 0x7B},
	evdev.KEY_KPPLUS:     {code: 0x79},
	evdev.KEY_KPENTER:    {code: 0x5A, extended: true},
	evdev.KEY_KPSLASH:    {code: 0x4A, extended: true},
}

// pausePress is the full wire sequence the Pause/Break key emits on press.
// Its release emits nothing.
var pausePress = []byte{0xE1, 0x14, 0x77, 0xE1, 0xF0, 0x14, 0xF0, 0x77}
