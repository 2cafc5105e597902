/*------------------------------------------------------------------------------
* sbas.go : raw SBAS message container
*-----------------------------------------------------------------------------*/
package gnsscore

/* SBAS message payload without preamble, message type and CRC */
const SBAS_RAW_PAYLOAD_LENGTH = 27

// SbasRawData carries one SBAS message as received, for decoding by a
// downstream consumer.
type SbasRawData struct {
	Sid                Sid
	TimeOfTransmission GpsTime
	MessageType        uint8
	Data               [SBAS_RAW_PAYLOAD_LENGTH]uint8
}
