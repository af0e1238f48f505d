package xlstyle

// BIFF record identifiers of the workbook globals that carry formatting.
const (
	recordEOF      = 0x000A
	recordCodepage = 0x0042
	recordFont     = 0x0031
	recordPalette  = 0x0092
	recordXF       = 0x00E0
	recordStyle    = 0x0293
	recordFormat   = 0x041E
	recordBOF      = 0x0809
)

const (
	biff8Version = 0x0600
	biff5Version = 0x0500
)

// the header of every record in a BIFF stream.
type bof struct {
	ID   uint16
	Size uint16
}

// the payload of a BOF record.
type biffHeader struct {
	Ver    uint16
	Type   uint16
	IDMake uint16
	Year   uint16
	Flags  uint32
	MinVer uint32
}
