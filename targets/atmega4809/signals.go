package atmega4809

import "halcore-go/signal"

// PORTMUX routing options. Alt value 0 is the default route, 1 the first
// alternate, 2 the second (SPI0 only). Tables follow the vendor pinout for
// the 48-pin package.
var defs = []signal.SignalDefinition{
	// USART0: default PA0/PA1, alternate PA4/PA5.
	{Peripheral: USART0, Signal: signal.SignalTX, Options: []signal.PinOption{{Pin: PA0, Alt: 0}, {Pin: PA4, Alt: 1}}},
	{Peripheral: USART0, Signal: signal.SignalRX, Options: []signal.PinOption{{Pin: PA1, Alt: 0}, {Pin: PA5, Alt: 1}}},
	{Peripheral: USART0, Signal: signal.SignalXCK, Options: []signal.PinOption{{Pin: PA2, Alt: 0}, {Pin: PA6, Alt: 1}}},
	{Peripheral: USART0, Signal: signal.SignalXDIR, Options: []signal.PinOption{{Pin: PA3, Alt: 0}, {Pin: PA7, Alt: 1}}},

	// USART1: default PC0/PC1, alternate PC4/PC5.
	{Peripheral: USART1, Signal: signal.SignalTX, Options: []signal.PinOption{{Pin: PC0, Alt: 0}, {Pin: PC4, Alt: 1}}},
	{Peripheral: USART1, Signal: signal.SignalRX, Options: []signal.PinOption{{Pin: PC1, Alt: 0}, {Pin: PC5, Alt: 1}}},

	// USART2: default PF0/PF1, alternate PF4/PF5.
	{Peripheral: USART2, Signal: signal.SignalTX, Options: []signal.PinOption{{Pin: PF0, Alt: 0}, {Pin: PF4, Alt: 1}}},
	{Peripheral: USART2, Signal: signal.SignalRX, Options: []signal.PinOption{{Pin: PF1, Alt: 0}, {Pin: PF5, Alt: 1}}},

	// USART3: default PB0/PB1, alternate PB4/PB5.
	{Peripheral: USART3, Signal: signal.SignalTX, Options: []signal.PinOption{{Pin: PB0, Alt: 0}, {Pin: PB4, Alt: 1}}},
	{Peripheral: USART3, Signal: signal.SignalRX, Options: []signal.PinOption{{Pin: PB1, Alt: 0}, {Pin: PB5, Alt: 1}}},

	// TWI0: default PA2/PA3, alternate PC2/PC3.
	{Peripheral: TWI0, Signal: signal.SignalSDA, Options: []signal.PinOption{{Pin: PA2, Alt: 0}, {Pin: PC2, Alt: 1}}},
	{Peripheral: TWI0, Signal: signal.SignalSCL, Options: []signal.PinOption{{Pin: PA3, Alt: 0}, {Pin: PC3, Alt: 1}}},

	// SPI0: default PA4..PA7, alternate PC0..PC3, second alternate PE0..PE3.
	{Peripheral: SPI0, Signal: signal.SignalMOSI, Options: []signal.PinOption{{Pin: PA4, Alt: 0}, {Pin: PC0, Alt: 1}, {Pin: PE0, Alt: 2}}},
	{Peripheral: SPI0, Signal: signal.SignalMISO, Options: []signal.PinOption{{Pin: PA5, Alt: 0}, {Pin: PC1, Alt: 1}, {Pin: PE1, Alt: 2}}},
	{Peripheral: SPI0, Signal: signal.SignalSCK, Options: []signal.PinOption{{Pin: PA6, Alt: 0}, {Pin: PC2, Alt: 1}, {Pin: PE2, Alt: 2}}},
	{Peripheral: SPI0, Signal: signal.SignalSS, Options: []signal.PinOption{{Pin: PA7, Alt: 0}, {Pin: PC3, Alt: 1}, {Pin: PE3, Alt: 2}}},
}

// SignalDef looks up the routing table for one peripheral signal.
func SignalDef(per signal.PeripheralID, sig signal.SignalType) (*signal.SignalDefinition, bool) {
	for i := range defs {
		if defs[i].Peripheral == per && defs[i].Signal == sig {
			return &defs[i], true
		}
	}
	return nil, false
}
