package command

// helpText is the command list shown by the help command.
const helpText = `
Commands List

    list: Lists all drops
    usage: list

    create: Creates drop
    usage: create <NAME> <PARAM> <SECRET> <TYPE> <STOCK>

    delete: Deletes specific drop
    usage: delete <NAME>

    view: Shows specific drop details
    usage: view <NAME>

    edit: Edits specific drop details
    usage: edit <NAME> <FIELD> <VALUE>`
