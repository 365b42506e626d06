package opcodes

import "github.com/yourusername/opcode-quiz-api/internal/domain/entity"

// catalogue - статический каталог EVM-инструкций. Только для чтения,
// никогда не мутируется в рантайме.
var catalogue = []entity.Opcode{
	// Arithmetic Operations
	{Name: "ADD", Value: "1", Hex: "0x01", Gas: 3, Description: "Addition operation", Category: entity.CategoryArithmetic, Inputs: 2, Outputs: 1},
	{Name: "SUB", Value: "2", Hex: "0x02", Gas: 3, Description: "Subtraction operation", Category: entity.CategoryArithmetic, Inputs: 2, Outputs: 1},
	{Name: "MUL", Value: "3", Hex: "0x03", Gas: 5, Description: "Multiplication operation", Category: entity.CategoryArithmetic, Inputs: 2, Outputs: 1},
	{Name: "DIV", Value: "4", Hex: "0x04", Gas: 5, Description: "Integer division operation", Category: entity.CategoryArithmetic, Inputs: 2, Outputs: 1},
	{Name: "MOD", Value: "6", Hex: "0x06", Gas: 5, Description: "Modulo remainder operation", Category: entity.CategoryArithmetic, Inputs: 2, Outputs: 1},
	{Name: "EXP", Value: "10", Hex: "0x0a", Gas: 10, Description: "Exponential operation", Category: entity.CategoryArithmetic, Inputs: 2, Outputs: 1},

	// Comparison & Bitwise Logic
	{Name: "LT", Value: "16", Hex: "0x10", Gas: 3, Description: "Less-than comparison", Category: entity.CategoryComparison, Inputs: 2, Outputs: 1},
	{Name: "GT", Value: "17", Hex: "0x11", Gas: 3, Description: "Greater-than comparison", Category: entity.CategoryComparison, Inputs: 2, Outputs: 1},
	{Name: "EQ", Value: "20", Hex: "0x14", Gas: 3, Description: "Equality comparison", Category: entity.CategoryComparison, Inputs: 2, Outputs: 1},
	{Name: "AND", Value: "22", Hex: "0x16", Gas: 3, Description: "Bitwise AND operation", Category: entity.CategoryBitwise, Inputs: 2, Outputs: 1},
	{Name: "OR", Value: "23", Hex: "0x17", Gas: 3, Description: "Bitwise OR operation", Category: entity.CategoryBitwise, Inputs: 2, Outputs: 1},
	{Name: "XOR", Value: "24", Hex: "0x18", Gas: 3, Description: "Bitwise XOR operation", Category: entity.CategoryBitwise, Inputs: 2, Outputs: 1},

	// SHA3
	{Name: "SHA3", Value: "32", Hex: "0x20", Gas: 30, Description: "Compute Keccak-256 hash", Category: entity.CategorySha3, Inputs: 2, Outputs: 1},

	// Environment Information
	{Name: "ADDRESS", Value: "48", Hex: "0x30", Gas: 2, Description: "Get address of currently executing account", Category: entity.CategoryEnvironment, Inputs: 0, Outputs: 1},
	{Name: "BALANCE", Value: "49", Hex: "0x31", Gas: 100, Description: "Get balance of the given account", Category: entity.CategoryEnvironment, Inputs: 1, Outputs: 1},
	{Name: "ORIGIN", Value: "50", Hex: "0x32", Gas: 2, Description: "Get execution origination address", Category: entity.CategoryEnvironment, Inputs: 0, Outputs: 1},
	{Name: "CALLER", Value: "51", Hex: "0x33", Gas: 2, Description: "Get caller address", Category: entity.CategoryEnvironment, Inputs: 0, Outputs: 1},
	{Name: "CALLVALUE", Value: "52", Hex: "0x34", Gas: 2, Description: "Get deposited value by the instruction/transaction", Category: entity.CategoryEnvironment, Inputs: 0, Outputs: 1},
	{Name: "CALLDATASIZE", Value: "54", Hex: "0x36", Gas: 2, Description: "Get size of input data", Category: entity.CategoryEnvironment, Inputs: 0, Outputs: 1},
	{Name: "GASPRICE", Value: "58", Hex: "0x3a", Gas: 2, Description: "Get price of gas", Category: entity.CategoryEnvironment, Inputs: 0, Outputs: 1},

	// Block Information
	{Name: "BLOCKHASH", Value: "64", Hex: "0x40", Gas: 20, Description: "Get the hash of one of the 256 most recent complete blocks", Category: entity.CategoryBlockInfo, Inputs: 1, Outputs: 1},
	{Name: "COINBASE", Value: "65", Hex: "0x41", Gas: 2, Description: "Get the blocks beneficiary address", Category: entity.CategoryBlockInfo, Inputs: 0, Outputs: 1},
	{Name: "TIMESTAMP", Value: "66", Hex: "0x42", Gas: 2, Description: "Get the blocks timestamp", Category: entity.CategoryBlockInfo, Inputs: 0, Outputs: 1},
	{Name: "NUMBER", Value: "67", Hex: "0x43", Gas: 2, Description: "Get the blocks number", Category: entity.CategoryBlockInfo, Inputs: 0, Outputs: 1},
	{Name: "GASLIMIT", Value: "69", Hex: "0x45", Gas: 2, Description: "Get the blocks gas limit", Category: entity.CategoryBlockInfo, Inputs: 0, Outputs: 1},

	// Stack, Memory, Storage and Flow Operations
	{Name: "POP", Value: "80", Hex: "0x50", Gas: 2, Description: "Remove item from stack", Category: entity.CategoryStack, Inputs: 1, Outputs: 0},
	{Name: "MLOAD", Value: "81", Hex: "0x51", Gas: 3, Description: "Load word from memory", Category: entity.CategoryMemory, Inputs: 1, Outputs: 1},
	{Name: "MSTORE", Value: "82", Hex: "0x52", Gas: 3, Description: "Save word to memory", Category: entity.CategoryMemory, Inputs: 2, Outputs: 0},
	{Name: "SLOAD", Value: "84", Hex: "0x54", Gas: 100, Description: "Load word from storage", Category: entity.CategoryStorage, Inputs: 1, Outputs: 1},
	{Name: "SSTORE", Value: "85", Hex: "0x55", Gas: 100, Description: "Save word to storage", Category: entity.CategoryStorage, Inputs: 2, Outputs: 0},
	{Name: "JUMP", Value: "86", Hex: "0x56", Gas: 8, Description: "Alter the program counter", Category: entity.CategoryFlow, Inputs: 1, Outputs: 0},
	{Name: "JUMPI", Value: "87", Hex: "0x57", Gas: 10, Description: "Conditionally alter the program counter", Category: entity.CategoryFlow, Inputs: 2, Outputs: 0},

	// Push Operations
	{Name: "PUSH1", Value: "96", Hex: "0x60", Gas: 3, Description: "Place 1 byte item on stack", Category: entity.CategoryStack, Inputs: 0, Outputs: 1},
	{Name: "PUSH2", Value: "97", Hex: "0x61", Gas: 3, Description: "Place 2-byte item on stack", Category: entity.CategoryStack, Inputs: 0, Outputs: 1},
	{Name: "PUSH32", Value: "127", Hex: "0x7f", Gas: 3, Description: "Place 32-byte item on stack", Category: entity.CategoryStack, Inputs: 0, Outputs: 1},

	// System operations
	{Name: "CREATE", Value: "240", Hex: "0xf0", Gas: 32000, Description: "Create a new account with associated code", Category: entity.CategoryCreate, Inputs: 3, Outputs: 1},
	{Name: "CALL", Value: "241", Hex: "0xf1", Gas: 100, Description: "Message-call into an account", Category: entity.CategorySystem, Inputs: 7, Outputs: 1},
	{Name: "RETURN", Value: "243", Hex: "0xf3", Gas: 0, Description: "Halt execution returning output data", Category: entity.CategorySystem, Inputs: 2, Outputs: 0},
	{Name: "REVERT", Value: "253", Hex: "0xfd", Gas: 0, Description: "Halt execution reverting state changes", Category: entity.CategorySystem, Inputs: 2, Outputs: 0},

	// Logging
	{Name: "LOG0", Value: "160", Hex: "0xa0", Gas: 375, Description: "Append log record with no topics", Category: entity.CategoryLogging, Inputs: 2, Outputs: 0},
	{Name: "LOG1", Value: "161", Hex: "0xa1", Gas: 750, Description: "Append log record with one topic", Category: entity.CategoryLogging, Inputs: 3, Outputs: 0},
}
