package cbus

import "fmt"

// Code is a one-byte CBUS operation code. The top three bits encode the
// number of payload bytes that follow the opcode on the wire.
type Code uint8

// Kind is the coarse protocol category of an opcode. It drives routing
// decisions (a gateway forwards DCC traffic to the command station) and
// documentation, not payload shape.
type Kind int

const (
	KindGeneral Kind = iota
	KindConfig
	KindAccessory
	KindDCC
)

func (k Kind) String() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindConfig:
		return "config"
	case KindAccessory:
		return "accessory"
	case KindDCC:
		return "dcc"
	}
	return "unknown"
}

// Opcodes from CBUS Spec 6c.
const (
	// General / system
	ACK   Code = 0x00
	NAK   Code = 0x01
	HLT   Code = 0x02
	BON   Code = 0x03
	ARST  Code = 0x07
	DBG1  Code = 0x30
	EXTC  Code = 0x3F
	EXTC1 Code = 0x5F
	EXTC2 Code = 0x7F
	EXTC3 Code = 0x9F
	EXTC4 Code = 0xBF
	EXTC5 Code = 0xDF
	EXTC6 Code = 0xFF

	// Node configuration
	RSTAT  Code = 0x0C
	QNN    Code = 0x0D
	RQNP   Code = 0x10
	RQMN   Code = 0x11
	SNN    Code = 0x42
	RQNN   Code = 0x50
	NNREL  Code = 0x51
	NNACK  Code = 0x52
	NNLRN  Code = 0x53
	NNULN  Code = 0x54
	NNCLR  Code = 0x55
	NNEVN  Code = 0x56
	NERD   Code = 0x57
	RQEVN  Code = 0x58
	WRACK  Code = 0x59
	BOOTM  Code = 0x5C
	ENUM   Code = 0x5D
	CMDERR Code = 0x6F
	EVNLF  Code = 0x70
	NVRD   Code = 0x71
	NENRD  Code = 0x72
	RQNPN  Code = 0x73
	NUMEV  Code = 0x74
	CANID  Code = 0x75
	EVULN  Code = 0x95
	NVSET  Code = 0x96
	NVANS  Code = 0x97
	PARAN  Code = 0x9B
	REVAL  Code = 0x9C
	REQEV  Code = 0xB2
	NEVAL  Code = 0xB5
	PNN    Code = 0xB6
	EVLRN  Code = 0xD2
	EVANS  Code = 0xD3
	NAME   Code = 0xE2
	PARAMS Code = 0xEF
	ENRSP  Code = 0xF2
	EVLRNI Code = 0xF5

	// Accessory events
	RQDAT  Code = 0x5A
	RQDDS  Code = 0x5B
	ACON   Code = 0x90
	ACOF   Code = 0x91
	AREQ   Code = 0x92
	ARON   Code = 0x93
	AROF   Code = 0x94
	ASON   Code = 0x98
	ASOF   Code = 0x99
	ASRQ   Code = 0x9A
	ARSON  Code = 0x9D
	ARSOF  Code = 0x9E
	ACON1  Code = 0xB0
	ACOF1  Code = 0xB1
	ARON1  Code = 0xB3
	AROF1  Code = 0xB4
	ASON1  Code = 0xB8
	ASOF1  Code = 0xB9
	ARSON1 Code = 0xBD
	ARSOF1 Code = 0xBE
	FCLK   Code = 0xCF
	ACON2  Code = 0xD0
	ACOF2  Code = 0xD1
	ARON2  Code = 0xD4
	AROF2  Code = 0xD5
	ASON2  Code = 0xD8
	ASOF2  Code = 0xD9
	ARSON2 Code = 0xDD
	ARSOF2 Code = 0xDE
	ACON3  Code = 0xF0
	ACOF3  Code = 0xF1
	ARON3  Code = 0xF3
	AROF3  Code = 0xF4
	ACDAT  Code = 0xF6
	ARDAT  Code = 0xF7
	ASON3  Code = 0xF8
	ASOF3  Code = 0xF9
	DDES   Code = 0xFA
	DDRS   Code = 0xFB
	ARSON3 Code = 0xFD
	ARSOF3 Code = 0xFE

	// DCC session / track control
	TOF   Code = 0x04
	TON   Code = 0x05
	ESTOP Code = 0x06
	RTOF  Code = 0x08
	RTON  Code = 0x09
	RESTP Code = 0x0A
	KLOC  Code = 0x21
	QLOC  Code = 0x22
	DKEEP Code = 0x23
	RLOC  Code = 0x40
	QCON  Code = 0x41
	ALOC  Code = 0x43
	STMOD Code = 0x44
	PCON  Code = 0x45
	KCON  Code = 0x46
	DSPD  Code = 0x47
	DFLG  Code = 0x48
	DFNON Code = 0x49
	DFNOF Code = 0x4A
	SSTAT Code = 0x4C
	DFUN  Code = 0x60
	GLOC  Code = 0x61
	ERR   Code = 0x63
	RDCC3 Code = 0x80
	WCVO  Code = 0x82
	WCVB  Code = 0x83
	QCVS  Code = 0x84
	PCVS  Code = 0x85
	RDCC4 Code = 0xA0
	WCVS  Code = 0xA2
	RDCC5 Code = 0xC0
	WCVOA Code = 0xC1
	RDCC6 Code = 0xE0
	PLOC  Code = 0xE1
	STAT  Code = 0xE3
)

// Entry is the registry metadata for one opcode.
type Entry struct {
	Code Code
	Name string
	Kind Kind

	// DataBytes is the fixed count of payload bytes following the
	// opcode; the protocol packs it into the top three bits of the code.
	DataBytes int

	// MinPri is the minor-priority hint used for outbound headers.
	MinPri MinPri
}

var entries = []Entry{
	{Code: ACK, Name: "ACK", Kind: KindGeneral, MinPri: MinNormal},
	{Code: NAK, Name: "NAK", Kind: KindGeneral, MinPri: MinNormal},
	{Code: HLT, Name: "HLT", Kind: KindGeneral, MinPri: MinHigh},
	{Code: BON, Name: "BON", Kind: KindGeneral, MinPri: MinAboveNormal},
	{Code: ARST, Name: "ARST", Kind: KindGeneral, MinPri: MinHigh},
	{Code: DBG1, Name: "DBG1", Kind: KindGeneral, MinPri: MinNormal},
	{Code: EXTC, Name: "EXTC", Kind: KindGeneral, MinPri: MinLow},
	{Code: EXTC1, Name: "EXTC1", Kind: KindGeneral, MinPri: MinLow},
	{Code: EXTC2, Name: "EXTC2", Kind: KindGeneral, MinPri: MinLow},
	{Code: EXTC3, Name: "EXTC3", Kind: KindGeneral, MinPri: MinLow},
	{Code: EXTC4, Name: "EXTC4", Kind: KindGeneral, MinPri: MinLow},
	{Code: EXTC5, Name: "EXTC5", Kind: KindGeneral, MinPri: MinLow},
	{Code: EXTC6, Name: "EXTC6", Kind: KindGeneral, MinPri: MinLow},

	{Code: RSTAT, Name: "RSTAT", Kind: KindConfig, MinPri: MinNormal},
	{Code: QNN, Name: "QNN", Kind: KindConfig, MinPri: MinLow},
	{Code: RQNP, Name: "RQNP", Kind: KindConfig, MinPri: MinLow},
	{Code: RQMN, Name: "RQMN", Kind: KindConfig, MinPri: MinNormal},
	{Code: SNN, Name: "SNN", Kind: KindConfig, MinPri: MinLow},
	{Code: RQNN, Name: "RQNN", Kind: KindConfig, MinPri: MinLow},
	{Code: NNREL, Name: "NNREL", Kind: KindConfig, MinPri: MinLow},
	{Code: NNACK, Name: "NNACK", Kind: KindConfig, MinPri: MinLow},
	{Code: NNLRN, Name: "NNLRN", Kind: KindConfig, MinPri: MinLow},
	{Code: NNULN, Name: "NNULN", Kind: KindConfig, MinPri: MinLow},
	{Code: NNCLR, Name: "NNCLR", Kind: KindConfig, MinPri: MinLow},
	{Code: NNEVN, Name: "NNEVN", Kind: KindConfig, MinPri: MinLow},
	{Code: NERD, Name: "NERD", Kind: KindConfig, MinPri: MinLow},
	{Code: RQEVN, Name: "RQEVN", Kind: KindConfig, MinPri: MinLow},
	{Code: WRACK, Name: "WRACK", Kind: KindConfig, MinPri: MinLow},
	{Code: BOOTM, Name: "BOOTM", Kind: KindConfig, MinPri: MinLow},
	{Code: ENUM, Name: "ENUM", Kind: KindConfig, MinPri: MinLow},
	{Code: CMDERR, Name: "CMDERR", Kind: KindConfig, MinPri: MinLow},
	{Code: EVNLF, Name: "EVNLF", Kind: KindConfig, MinPri: MinLow},
	{Code: NVRD, Name: "NVRD", Kind: KindConfig, MinPri: MinLow},
	{Code: NENRD, Name: "NENRD", Kind: KindConfig, MinPri: MinLow},
	{Code: RQNPN, Name: "RQNPN", Kind: KindConfig, MinPri: MinLow},
	{Code: NUMEV, Name: "NUMEV", Kind: KindConfig, MinPri: MinLow},
	{Code: CANID, Name: "CANID", Kind: KindConfig, MinPri: MinLow},
	{Code: EVULN, Name: "EVULN", Kind: KindConfig, MinPri: MinLow},
	{Code: NVSET, Name: "NVSET", Kind: KindConfig, MinPri: MinLow},
	{Code: NVANS, Name: "NVANS", Kind: KindConfig, MinPri: MinLow},
	{Code: PARAN, Name: "PARAN", Kind: KindConfig, MinPri: MinLow},
	{Code: REVAL, Name: "REVAL", Kind: KindConfig, MinPri: MinLow},
	{Code: REQEV, Name: "REQEV", Kind: KindConfig, MinPri: MinLow},
	{Code: NEVAL, Name: "NEVAL", Kind: KindConfig, MinPri: MinLow},
	{Code: PNN, Name: "PNN", Kind: KindConfig, MinPri: MinLow},
	{Code: EVLRN, Name: "EVLRN", Kind: KindConfig, MinPri: MinLow},
	{Code: EVANS, Name: "EVANS", Kind: KindConfig, MinPri: MinLow},
	{Code: NAME, Name: "NAME", Kind: KindConfig, MinPri: MinLow},
	{Code: PARAMS, Name: "PARAMS", Kind: KindConfig, MinPri: MinLow},
	{Code: ENRSP, Name: "ENRSP", Kind: KindConfig, MinPri: MinLow},
	{Code: EVLRNI, Name: "EVLRNI", Kind: KindConfig, MinPri: MinLow},

	{Code: RQDAT, Name: "RQDAT", Kind: KindAccessory, MinPri: MinLow},
	{Code: RQDDS, Name: "RQDDS", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACON, Name: "ACON", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACOF, Name: "ACOF", Kind: KindAccessory, MinPri: MinLow},
	{Code: AREQ, Name: "AREQ", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARON, Name: "ARON", Kind: KindAccessory, MinPri: MinLow},
	{Code: AROF, Name: "AROF", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASON, Name: "ASON", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASOF, Name: "ASOF", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASRQ, Name: "ASRQ", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARSON, Name: "ARSON", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARSOF, Name: "ARSOF", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACON1, Name: "ACON1", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACOF1, Name: "ACOF1", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARON1, Name: "ARON1", Kind: KindAccessory, MinPri: MinLow},
	{Code: AROF1, Name: "AROF1", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASON1, Name: "ASON1", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASOF1, Name: "ASOF1", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARSON1, Name: "ARSON1", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARSOF1, Name: "ARSOF1", Kind: KindAccessory, MinPri: MinLow},
	{Code: FCLK, Name: "FCLK", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACON2, Name: "ACON2", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACOF2, Name: "ACOF2", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARON2, Name: "ARON2", Kind: KindAccessory, MinPri: MinLow},
	{Code: AROF2, Name: "AROF2", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASON2, Name: "ASON2", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASOF2, Name: "ASOF2", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARSON2, Name: "ARSON2", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARSOF2, Name: "ARSOF2", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACON3, Name: "ACON3", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACOF3, Name: "ACOF3", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARON3, Name: "ARON3", Kind: KindAccessory, MinPri: MinLow},
	{Code: AROF3, Name: "AROF3", Kind: KindAccessory, MinPri: MinLow},
	{Code: ACDAT, Name: "ACDAT", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARDAT, Name: "ARDAT", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASON3, Name: "ASON3", Kind: KindAccessory, MinPri: MinLow},
	{Code: ASOF3, Name: "ASOF3", Kind: KindAccessory, MinPri: MinLow},
	{Code: DDES, Name: "DDES", Kind: KindAccessory, MinPri: MinLow},
	{Code: DDRS, Name: "DDRS", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARSON3, Name: "ARSON3", Kind: KindAccessory, MinPri: MinLow},
	{Code: ARSOF3, Name: "ARSOF3", Kind: KindAccessory, MinPri: MinLow},

	{Code: TOF, Name: "TOF", Kind: KindDCC, MinPri: MinAboveNormal},
	{Code: TON, Name: "TON", Kind: KindDCC, MinPri: MinAboveNormal},
	{Code: ESTOP, Name: "ESTOP", Kind: KindDCC, MinPri: MinAboveNormal},
	{Code: RTOF, Name: "RTOF", Kind: KindDCC, MinPri: MinAboveNormal},
	{Code: RTON, Name: "RTON", Kind: KindDCC, MinPri: MinAboveNormal},
	{Code: RESTP, Name: "RESTP", Kind: KindDCC, MinPri: MinHigh},
	{Code: KLOC, Name: "KLOC", Kind: KindDCC, MinPri: MinNormal},
	{Code: QLOC, Name: "QLOC", Kind: KindDCC, MinPri: MinNormal},
	{Code: DKEEP, Name: "DKEEP", Kind: KindDCC, MinPri: MinNormal},
	{Code: RLOC, Name: "RLOC", Kind: KindDCC, MinPri: MinNormal},
	{Code: QCON, Name: "QCON", Kind: KindDCC, MinPri: MinNormal},
	{Code: ALOC, Name: "ALOC", Kind: KindDCC, MinPri: MinNormal},
	{Code: STMOD, Name: "STMOD", Kind: KindDCC, MinPri: MinNormal},
	{Code: PCON, Name: "PCON", Kind: KindDCC, MinPri: MinNormal},
	{Code: KCON, Name: "KCON", Kind: KindDCC, MinPri: MinNormal},
	{Code: DSPD, Name: "DSPD", Kind: KindDCC, MinPri: MinNormal},
	{Code: DFLG, Name: "DFLG", Kind: KindDCC, MinPri: MinNormal},
	{Code: DFNON, Name: "DFNON", Kind: KindDCC, MinPri: MinNormal},
	{Code: DFNOF, Name: "DFNOF", Kind: KindDCC, MinPri: MinNormal},
	{Code: SSTAT, Name: "SSTAT", Kind: KindDCC, MinPri: MinNormal},
	{Code: DFUN, Name: "DFUN", Kind: KindDCC, MinPri: MinNormal},
	{Code: GLOC, Name: "GLOC", Kind: KindDCC, MinPri: MinNormal},
	{Code: ERR, Name: "ERR", Kind: KindDCC, MinPri: MinNormal},
	{Code: RDCC3, Name: "RDCC3", Kind: KindDCC, MinPri: MinNormal},
	{Code: WCVO, Name: "WCVO", Kind: KindDCC, MinPri: MinNormal},
	{Code: WCVB, Name: "WCVB", Kind: KindDCC, MinPri: MinNormal},
	{Code: QCVS, Name: "QCVS", Kind: KindDCC, MinPri: MinNormal},
	{Code: PCVS, Name: "PCVS", Kind: KindDCC, MinPri: MinNormal},
	{Code: RDCC4, Name: "RDCC4", Kind: KindDCC, MinPri: MinNormal},
	{Code: WCVS, Name: "WCVS", Kind: KindDCC, MinPri: MinNormal},
	{Code: RDCC5, Name: "RDCC5", Kind: KindDCC, MinPri: MinNormal},
	{Code: WCVOA, Name: "WCVOA", Kind: KindDCC, MinPri: MinNormal},
	{Code: RDCC6, Name: "RDCC6", Kind: KindDCC, MinPri: MinNormal},
	{Code: PLOC, Name: "PLOC", Kind: KindDCC, MinPri: MinNormal},
	{Code: STAT, Name: "STAT", Kind: KindDCC, MinPri: MinNormal},
}

var (
	table   [256]Entry
	present [256]bool
)

func init() {
	for _, e := range entries {
		if present[e.Code] {
			panic("cbus: duplicate opcode " + e.Name)
		}
		e.DataBytes = int(e.Code >> 5)
		table[e.Code] = e
		present[e.Code] = true
	}
}

// Lookup returns the registry entry for a code. The table is built once
// at init and never mutated, so Lookup is safe from any goroutine.
func Lookup(c Code) (Entry, bool) {
	return table[c], present[c]
}

// Registered reports whether the code exists in the registry.
func Registered(c Code) bool { return present[c] }

func (c Code) String() string {
	if present[c] {
		return table[c].Name
	}
	return fmt.Sprintf("0x%02X", uint8(c))
}
