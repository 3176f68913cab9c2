package ili9341

// Registers (from the ILI9341 datasheet).
const (
	NOP        = 0x00
	SWRESET    = 0x01
	RDDID      = 0x04
	RDDST      = 0x09
	SLPIN      = 0x10
	SLPOUT     = 0x11
	PTLON      = 0x12
	NORON      = 0x13
	GAMMASET   = 0x26
	INVOFF     = 0x20
	INVON      = 0x21
	DISPOFF    = 0x28
	DISPON     = 0x29
	CASET      = 0x2A
	RASET      = 0x2B
	RAMWR      = 0x2C
	RAMRD      = 0x2E
	PTLAR      = 0x30
	VSCRDEF    = 0x33
	MADCTL     = 0x36
	VSCRSADD   = 0x37
	PIXFMT     = 0x3A
	WRDISBV    = 0x51
	RDDISBV    = 0x52
	WRCTRLD    = 0x53
	FRMCTR1    = 0xB1
	FRMCTR2    = 0xB2
	FRMCTR3    = 0xB3
	INVCTR     = 0xB4
	DFUNCTR    = 0xB6
	PWCTR1     = 0xC0
	PWCTR2     = 0xC1
	VMCTR1     = 0xC5
	VMCTR2     = 0xC7
	PWCTRA     = 0xCB
	PWCTRB     = 0xCF
	RDID1      = 0xDA
	RDID2      = 0xDB
	RDID3      = 0xDC
	RDID4      = 0xDD
	GMCTRP1    = 0xE0
	GMCTRN1    = 0xE1
	DTCTRA     = 0xE8
	DTCTRB     = 0xEA
	PWRONCTR   = 0xED
	GAMMA3GCTR = 0xF2
	PUMPRCTR   = 0xF7
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	_                    byte = 1 << iota // D0: reserved
	_                                     // D1: reserved
	displayDataLatchOrder                 // D2: MH
	bgrOrder                              // D3: BGR
	lineAddressOrder                      // D4: ML
	pageColumnOrder                       // D5: MV
	columnAddressOrder                    // D6: MX
	pageAddressOrder                      // D7: MY
)

// MADCTL bits by their datasheet names.
const (
	MADCTL_MY  = pageAddressOrder
	MADCTL_MX  = columnAddressOrder
	MADCTL_MV  = pageColumnOrder
	MADCTL_ML  = lineAddressOrder
	MADCTL_BGR = bgrOrder
	MADCTL_MH  = displayDataLatchOrder
)
